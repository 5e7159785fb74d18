package middleware

import (
	"context"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/constants"
	"github.com/yukikurage/todolist-api/internal/utils"
)

type requestIDKey struct{}

// validRequestID bounds what an inbound id may contain before it reaches logs
// and response headers.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

// RequestID reuses a well-formed inbound X-Request-Id or generates one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(constants.RequestIDHeader)
		if !validRequestID.MatchString(rid) {
			rid = ""
			generated, err := utils.GenerateRequestID()
			if err == nil {
				rid = generated
			}
		}

		c.Set(constants.ContextKeyRequestID, rid)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey{}, rid))
		c.Header(constants.RequestIDHeader, rid)
		c.Next()
	}
}

// RequestIDFrom returns the request id stored in ctx, if any.
func RequestIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}
