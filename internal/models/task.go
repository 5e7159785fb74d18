package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Toggle returns the opposite status.
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskStatusDone {
		return TaskStatusPending
	}
	return TaskStatusDone
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is owned by exactly one user. UserID never changes after creation.
// The validate tags are the constraints every stored task satisfies; they are
// checked again after a partial update is merged.
type Task struct {
	ID          string       `gorm:"type:varchar(36);primarykey" bson:"_id" json:"id"`
	Title       string       `gorm:"type:varchar(50);not null" bson:"title" json:"title" validate:"required,min=1,max=50"`
	Description string       `gorm:"type:varchar(200)" bson:"description" json:"description" validate:"max=200"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:'medium';index:idx_tasks_user_priority,priority:2" bson:"priority" json:"priority" validate:"required,oneof=low medium high"`
	Status      TaskStatus   `gorm:"type:varchar(10);not null;default:'pending';index:idx_tasks_user_status,priority:2" bson:"status" json:"status" validate:"required,oneof=pending done"`
	UserID      string       `gorm:"type:varchar(36);not null;index:idx_tasks_user_created,priority:1;index:idx_tasks_user_status,priority:1;index:idx_tasks_user_priority,priority:1" bson:"userId" json:"userId" validate:"required"`
	CreatedAt   time.Time    `gorm:"index:idx_tasks_user_created,priority:2,sort:desc" bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// BeforeCreate assigns the server-side id.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
