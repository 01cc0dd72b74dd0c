package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"focusos/internal/core/domain"
	"focusos/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	collection *mongo.Collection
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{collection: database.Collection(usersCollection)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func (r *UserRepository) Insert(ctx context.Context, user domain.User) (domain.User, error) {
	doc := userDoc{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.User{}, err
	}

	user.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return user, nil
}
