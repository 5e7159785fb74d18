package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/constants"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/services"
)

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	ID    string
	Email string
	Name  string
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored in ctx by RequireAuth.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// CurrentIdentity returns the identity of the request handled by c.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	return IdentityFrom(c.Request.Context())
}

// TokenVerifier verifies access tokens.
type TokenVerifier interface {
	Verify(token string) (*services.TokenClaims, error)
}

// UserLookup resolves the user referenced by a token.
type UserLookup interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// RequireAuth checks the bearer token and loads the user it refers to.
// Any failure ends the request with 401.
func RequireAuth(tokens TokenVerifier, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := services.ExtractFromHeader(c.GetHeader(constants.AuthorizationHeader))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, services.ErrUserNotFound) {
				_ = c.Error(err)
			}
			abortUnauthorized(c, services.ErrUserNotFound)
			return
		}

		ctx := WithIdentity(c.Request.Context(), Identity{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	var message string
	switch {
	case errors.Is(err, services.ErrMissingToken):
		message = "Authorization token not provided"
	case errors.Is(err, services.ErrMalformedToken):
		message = "Invalid token format"
	case errors.Is(err, services.ErrUserNotFound):
		message = "User not found"
	default:
		message = "Invalid token"
	}
	apierrors.AbortWithError(c, http.StatusUnauthorized, message)
}
