package repository

import (
	"context"
	"errors"
	"fmt"

	"task_manager/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection(usersCollection)}
}

var _ Authorization = (*UserMongo)(nil)

// Create inserts a new user document. Username uniqueness is checked by the
// caller, not by an index.
func (r *UserMongo) Create(ctx context.Context, username, passwordHash string) (string, error) {
	doc := userDocument{ID: primitive.NewObjectID(), Username: username, Password: passwordHash}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert user %q: %w", username, err)
	}
	return doc.ID.Hex(), nil
}

// GetByUsername returns (nil, nil) if not found.
func (r *UserMongo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	u := doc.toModel()
	return &u, nil
}
