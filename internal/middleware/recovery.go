package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
)

// RecoveryWithLog turns a panic into a 500 envelope and logs the stack.
func RecoveryWithLog(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			"request_id", RequestIDFrom(c.Request.Context()),
			"panic", recovered,
			"stack", string(debug.Stack()),
		)
		apierrors.AbortWithError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
	})
}
