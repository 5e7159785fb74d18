package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection = "users"
	TasksCollection = "tasks"

	defaultMongoDatabase = "todolist"
)

// ConnectMongo dials the deployment in uri and returns the database named by
// the URI path ("todolist" when the path is empty).
func ConnectMongo(ctx context.Context, uri string, log *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	name, err := mongoDatabaseName(uri)
	if err != nil {
		return nil, nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10*time.Second).
		SetServerSelectionTimeout(10*time.Second))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("database connection established", "driver", string(DriverMongo), "database", name)
	return client, client.Database(name), nil
}

// EnsureMongoIndexes creates the unique email index and the owner-scoped task
// indexes. CreateMany is a no-op for indexes that already exist.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_users_email"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	_, err = db.Collection(TasksCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_tasks_user_created"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_tasks_user_status"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "priority", Value: 1}},
			Options: options.Index().SetName("idx_tasks_user_priority"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create tasks indexes: %w", err)
	}
	return nil
}

func mongoDatabaseName(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb uri: %w", err)
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return defaultMongoDatabase, nil
	}
	return name, nil
}
