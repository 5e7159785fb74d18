package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/dto"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/middleware"
	"github.com/yukikurage/todolist-api/internal/services"
	"github.com/yukikurage/todolist-api/internal/validation"
)

// TaskHandler serves the task endpoints. Every route runs behind
// middleware.RequireAuth and only ever touches the caller's own tasks.
type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns a page of the caller's tasks matching the query filters
func (h *TaskHandler) ListTasks(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	filters, err := validation.ParseTaskFilters(c.Request.URL.Query())
	if err != nil {
		respondValidationError(c, err)
		return
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), services.ListTasksInput{
		UserID:   identity.ID,
		Status:   filters.Status,
		Priority: filters.Priority,
		Search:   filters.Search,
		Page:     filters.Page,
		Limit:    filters.Limit,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, dto.ToTaskListResponse(page.Tasks, page.Pagination))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req validation.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		UserID:      identity.ID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	apierrors.Success(c, http.StatusCreated, dto.TaskResponse{Task: dto.ToTaskDTO(*task)})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"), identity.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, dto.TaskResponse{Task: dto.ToTaskDTO(*task)})
}

// UpdateTask applies a partial update to a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req validation.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if err := validation.ValidateUpdate(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), identity.ID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, dto.TaskResponse{Task: dto.ToTaskDTO(*task)})
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("id"), identity.ID); err != nil {
		respondTaskError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, dto.MessageResponse{Message: "Task deleted successfully"})
}

// DeleteCompletedTasks removes every done task of the caller
func (h *TaskHandler) DeleteCompletedTasks(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	count, err := h.taskService.DeleteCompletedTasks(c.Request.Context(), identity.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, dto.DeleteCompletedResponse{
		Message: fmt.Sprintf("%d completed task(s) deleted", count),
		Count:   count,
	})
}

func requireIdentity(c *gin.Context) (middleware.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
	}
	return identity, ok
}

func respondTaskError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		apierrors.BadRequest(c, verr.Error())
	case errors.Is(err, services.ErrInvalidTaskID):
		apierrors.BadRequest(c, "Invalid task id")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		apierrors.InternalError(c, err)
	}
}
