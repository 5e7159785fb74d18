package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/validation"
)

// bindJSON decodes the body into req and validates it. On failure it writes
// a 400 response and returns false.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	if err := validation.Struct(req); err != nil {
		respondValidationError(c, err)
		return false
	}
	return true
}

func respondValidationError(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		apierrors.BadRequest(c, verr.Error())
		return
	}
	apierrors.InternalError(c, err)
}
