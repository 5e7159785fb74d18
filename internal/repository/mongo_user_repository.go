package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/todolist-api/internal/database"
	"github.com/yukikurage/todolist-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
// Email uniqueness is enforced by the idx_users_email unique index.
type MongoUserRepository struct {
	users *mongo.Collection
}

// NewMongoUserRepository creates a UserRepository over the users collection
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{users: db.Collection(database.UsersCollection)}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := mongoNow()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.users.InsertOne(ctx, user)
	return translateMongoError(err)
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.users.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translateMongoError(err)
	}
	return &user, nil
}
