package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/utils"
)

var (
	// ErrNotFound is returned when no record matches, including records that
	// exist but belong to another user.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("repository: duplicate key")
)

// TaskRepository defines the interface for task data access.
// Every read and write is scoped to a single owner.
type TaskRepository interface {
	// Create stores a new task and fills in its id and timestamps
	Create(ctx context.Context, task *models.Task) error

	// FindOwned finds a task by id among the tasks owned by userID
	FindOwned(ctx context.Context, id, userID string) (*models.Task, error)

	// List retrieves an owner's tasks with filtering and pagination,
	// newest first, together with the total number of matches
	List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error)

	// Update replaces the mutable fields of a task owned by task.UserID
	Update(ctx context.Context, task *models.Task) error

	// DeleteOwned removes a single task owned by userID
	DeleteOwned(ctx context.Context, id, userID string) error

	// DeleteCompleted removes every done task owned by userID
	DeleteCompleted(ctx context.Context, userID string) (int64, error)
}

// TaskFilter holds filtering options for listing tasks.
// Filters combine conjunctively; zero values are ignored.
type TaskFilter struct {
	UserID     string
	Status     *models.TaskStatus
	Priority   *models.TaskPriority
	Search     string
	Pagination utils.PaginationParams
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user; ErrDuplicateKey when the email is taken
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email, including the password hash
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
