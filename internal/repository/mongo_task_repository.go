package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/todolist-api/internal/database"
	"github.com/yukikurage/todolist-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTaskRepository is a MongoDB implementation of TaskRepository
type MongoTaskRepository struct {
	tasks *mongo.Collection
}

// NewMongoTaskRepository creates a TaskRepository over the tasks collection
func NewMongoTaskRepository(db *mongo.Database) TaskRepository {
	return &MongoTaskRepository{tasks: db.Collection(database.TasksCollection)}
}

func (r *MongoTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := mongoNow()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := r.tasks.InsertOne(ctx, task)
	return translateMongoError(err)
}

func (r *MongoTaskRepository) FindOwned(ctx context.Context, id, userID string) (*models.Task, error) {
	var task models.Task
	err := r.tasks.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&task)
	if err != nil {
		return nil, translateMongoError(err)
	}
	return &task, nil
}

func (r *MongoTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error) {
	query := bson.M{"userId": filter.UserID}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.Priority != nil {
		query["priority"] = *filter.Priority
	}
	if filter.Search != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	total, err := r.tasks.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	if filter.Pagination.PastEnd(total) {
		return []models.Task{}, total, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(filter.Pagination.Offset)).
		SetLimit(int64(filter.Pagination.Limit))
	cursor, err := r.tasks.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *MongoTaskRepository) Update(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = mongoNow()
	result, err := r.tasks.UpdateOne(ctx,
		bson.M{"_id": task.ID, "userId": task.UserID},
		bson.M{"$set": bson.M{
			"title":       task.Title,
			"description": task.Description,
			"priority":    task.Priority,
			"status":      task.Status,
			"updatedAt":   task.UpdatedAt,
		}},
	)
	if err != nil {
		return translateMongoError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTaskRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	result, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTaskRepository) DeleteCompleted(ctx context.Context, userID string) (int64, error) {
	result, err := r.tasks.DeleteMany(ctx, bson.M{"userId": userID, "status": models.TaskStatusDone})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// mongoNow truncates to the millisecond precision BSON dates are stored with,
// so the returned document equals what a later read yields.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	default:
		return err
	}
}
