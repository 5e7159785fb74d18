package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/dto"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/middleware"
	"github.com/yukikurage/todolist-api/internal/services"
	"github.com/yukikurage/todolist-api/internal/validation"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a user and returns it with an access token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req validation.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	apierrors.Success(c, http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserDTO(*result.User),
		Token: result.Token,
	})
}

// Login authenticates a user and returns a fresh access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req validation.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserDTO(*result.User),
		Token: result.Token,
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), identity.ID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, dto.UserResponse{User: dto.ToUserDTO(*user)})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		apierrors.Conflict(c, "A user with this email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		apierrors.InternalError(c, err)
	}
}
