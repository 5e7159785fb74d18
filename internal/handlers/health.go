package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/dto"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
)

// Health reports liveness. It never touches the store.
func Health(environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apierrors.Success(c, http.StatusOK, dto.HealthResponse{
			Status:      "ok",
			Message:     "Todo list API is running",
			Timestamp:   time.Now().UTC(),
			Environment: environment,
		})
	}
}

// NotFound answers every unmatched route.
func NotFound(c *gin.Context) {
	apierrors.NotFound(c, apierrors.MsgRouteNotFound)
}
