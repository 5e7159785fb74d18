package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/config"
	"github.com/yukikurage/todolist-api/internal/constants"
	"github.com/yukikurage/todolist-api/internal/middleware"
	"github.com/yukikurage/todolist-api/internal/repository"
	"github.com/yukikurage/todolist-api/internal/services"
)

// NewRouter wires services and handlers over the given repositories and
// registers every route.
func NewRouter(cfg *config.Config, log *slog.Logger, users repository.UserRepository, tasks repository.TaskRepository) *gin.Engine {
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	authService := services.NewAuthService(users, tokenService, cfg.BCryptCost)
	taskService := services.NewTaskService(tasks)

	authHandler := NewAuthHandler(authService)
	taskHandler := NewTaskHandler(taskService)
	requireAuth := middleware.RequireAuth(tokenService, authService)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.RecoveryWithLog(log),
		middleware.CORS(cfg.FrontendURL),
	)

	r.GET("/health", Health(cfg.Environment))

	api := r.Group(constants.APIPrefix)
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
		}

		// Task routes (protected)
		taskRoutes := api.Group("/tasks")
		taskRoutes.Use(requireAuth)
		{
			taskRoutes.GET("", taskHandler.ListTasks)
			taskRoutes.POST("", taskHandler.CreateTask)
			taskRoutes.DELETE("/completed/all", taskHandler.DeleteCompletedTasks)
			taskRoutes.GET("/:id", taskHandler.GetTask)
			taskRoutes.PUT("/:id", taskHandler.UpdateTask)
			taskRoutes.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	r.NoRoute(NotFound)

	return r
}
