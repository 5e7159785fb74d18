package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/repository"
	"github.com/yukikurage/todolist-api/internal/utils"
	"github.com/yukikurage/todolist-api/internal/validation"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidTaskID = errors.New("invalid task id")
)

// TaskService handles task business logic. Every method is scoped to the
// tasks of a single owner.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	UserID   string
	Status   *models.TaskStatus
	Priority *models.TaskPriority
	Search   string
	Page     int
	Limit    int
}

// TaskPage is one page of an owner's tasks.
type TaskPage struct {
	Tasks      []models.Task
	Pagination utils.PaginationResponse
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Priority    models.TaskPriority
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
}

// ListTasks returns the owner's tasks matching the filters, newest first
func (s *TaskService) ListTasks(ctx context.Context, input ListTasksInput) (*TaskPage, error) {
	params := utils.NewPaginationParams(input.Page, input.Limit)
	filter := repository.TaskFilter{
		UserID:     input.UserID,
		Status:     input.Status,
		Priority:   input.Priority,
		Search:     input.Search,
		Pagination: params,
	}

	tasks, total, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	return &TaskPage{
		Tasks:      tasks,
		Pagination: utils.NewPaginationResponse(params, total),
	}, nil
}

// CreateTask creates a pending task owned by input.UserID
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      models.TaskStatusPending,
		UserID:      input.UserID,
	}
	if err := validation.Struct(task); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTask returns a task owned by userID
func (s *TaskService) GetTask(ctx context.Context, taskID, userID string) (*models.Task, error) {
	if err := checkTaskID(taskID); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindOwned(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// UpdateTask applies the supplied fields to a task owned by userID and
// validates the merged result before saving it
func (s *TaskService) UpdateTask(ctx context.Context, taskID, userID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	if err := validation.Struct(task); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task owned by userID
func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	if err := checkTaskID(taskID); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteOwned(ctx, taskID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// DeleteCompletedTasks removes every done task owned by userID and reports
// how many were removed
func (s *TaskService) DeleteCompletedTasks(ctx context.Context, userID string) (int64, error) {
	count, err := s.taskRepo.DeleteCompleted(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete completed tasks: %w", err)
	}
	return count, nil
}

func checkTaskID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidTaskID
	}
	return nil
}
