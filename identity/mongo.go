package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcode-github/nestora/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores credentials in the users collection.
type MongoRepository struct {
	users *mongo.Collection
}

func NewMongoRepository(users *mongo.Collection) *MongoRepository {
	return &MongoRepository{users: users}
}

// EnsureIndexes makes email unique so concurrent registrations cannot
// both succeed.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (models.Credential, error) {
	var cred models.Credential
	err := r.users.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Credential{}, ErrNotFound
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("find user by email: %w", err)
	}
	return cred, nil
}

func (r *MongoRepository) Create(ctx context.Context, cred models.Credential) error {
	cred.Email = normalizeEmail(cred.Email)
	_, err := r.users.InsertOne(ctx, cred)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
