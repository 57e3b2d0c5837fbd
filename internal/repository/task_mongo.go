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

type TaskMongo struct {
	coll *mongo.Collection
}

func NewTaskMongo(db *mongo.Database) *TaskMongo {
	return &TaskMongo{coll: db.Collection(tasksCollection)}
}

var _ TaskRepo = (*TaskMongo)(nil)

// List returns every task in natural order.
func (r *TaskMongo) List(ctx context.Context) ([]models.Task, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	var docs []taskDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	out := make([]models.Task, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *TaskMongo) Create(ctx context.Context, t models.Task) (string, error) {
	doc := newTaskDocument(t)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert task %q: %w", t.TaskName, err)
	}
	return doc.ID.Hex(), nil
}

// GetByID returns (nil, nil) for unknown or malformed ids.
func (r *TaskMongo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, nil
	}
	var doc taskDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find task %q: %w", id, err)
	}
	t := doc.toModel()
	return &t, nil
}

// Replace swaps the whole document body; fields absent from t are dropped.
func (r *TaskMongo) Replace(ctx context.Context, id string, t models.Task) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil
	}
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, newTaskDocument(t)); err != nil {
		return fmt.Errorf("replace task %q: %w", id, err)
	}
	return nil
}

// Delete removes the task. Deleting an absent id is not an error.
func (r *TaskMongo) Delete(ctx context.Context, id string) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete task %q: %w", id, err)
	}
	return nil
}
