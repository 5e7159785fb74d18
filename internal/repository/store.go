package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yukikurage/todolist-api/internal/database"
)

// Store bundles the repositories of one backend with its shutdown hook.
type Store struct {
	Users UserRepository
	Tasks TaskRepository
	Close func(ctx context.Context) error
}

// Open connects to the backend named by databaseURL, prepares its schema and
// returns the repositories bound to it.
func Open(ctx context.Context, databaseURL string, log *slog.Logger) (*Store, error) {
	driver, err := database.DriverFor(databaseURL)
	if err != nil {
		return nil, err
	}

	if driver == database.DriverMongo {
		client, db, err := database.ConnectMongo(ctx, databaseURL, log)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Store{
			Users: NewMongoUserRepository(db),
			Tasks: NewMongoTaskRepository(db),
			Close: client.Disconnect,
		}, nil
	}

	db, err := database.Connect(databaseURL, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, log); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	return &Store{
		Users: NewUserRepository(db),
		Tasks: NewTaskRepository(db),
		Close: func(context.Context) error { return sqlDB.Close() },
	}, nil
}
