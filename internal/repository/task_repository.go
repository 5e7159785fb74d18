package repository

import (
	"context"

	"github.com/yukikurage/todolist-api/internal/database"
	"github.com/yukikurage/todolist-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return translateError(r.db.WithContext(ctx).Create(task).Error)
}

// FindOwned finds a task by ID scoped to its owner
func (r *GormTaskRepository) FindOwned(ctx context.Context, id, userID string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &task, nil
}

// List retrieves tasks with filtering and pagination
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error) {
	scopes := []func(*gorm.DB) *gorm.DB{database.OwnedBy(filter.UserID)}
	if filter.Status != nil {
		status := *filter.Status
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", status)
		})
	}
	if filter.Priority != nil {
		priority := *filter.Priority
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("priority = ?", priority)
		})
	}
	if filter.Search != "" {
		scopes = append(scopes, database.MatchText(filter.Search))
	}

	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Task{}).Scopes(scopes...)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := []models.Task{}
	if filter.Pagination.PastEnd(total) {
		return tasks, total, nil
	}
	err := query().
		Order("created_at DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update updates a task's mutable fields
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).
		Model(task).
		Scopes(database.OwnedBy(task.UserID)).
		Select("title", "description", "priority", "status", "updated_at").
		Updates(task)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOwned hard deletes a task
func (r *GormTaskRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCompleted deletes all done tasks of a user in one statement
func (r *GormTaskRepository) DeleteCompleted(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("status = ?", models.TaskStatusDone).
		Delete(&models.Task{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
