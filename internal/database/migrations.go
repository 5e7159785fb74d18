package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/todolist-api/internal/models"
	"gorm.io/gorm"
)

// taskIndexes are the composite indexes backing the owner-scoped list and
// filter queries. They are declared on models.Task.
var taskIndexes = []string{
	"idx_tasks_user_created",
	"idx_tasks_user_status",
	"idx_tasks_user_priority",
}

// Migrate creates or updates the users and tasks tables.
func Migrate(db *gorm.DB, log *slog.Logger) error {
	log.Info("running database migrations")
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(db, log); err != nil {
		return err
	}
	log.Info("database migrations completed")
	return nil
}

// AddIndexes makes sure the task indexes exist on tables created before they
// were declared.
func AddIndexes(db *gorm.DB, log *slog.Logger) error {
	migrator := db.Migrator()
	for _, name := range taskIndexes {
		if migrator.HasIndex(&models.Task{}, name) {
			continue
		}
		if err := migrator.CreateIndex(&models.Task{}, name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", name, err)
		}
		log.Info("created index", "index", name)
	}
	return nil
}
