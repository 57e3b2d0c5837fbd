package repository

import (
	"context"
	"errors"
	"fmt"

	"task_manager/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryMongo struct {
	coll *mongo.Collection
}

func NewCategoryMongo(db *mongo.Database) *CategoryMongo {
	return &CategoryMongo{coll: db.Collection(categoriesCollection)}
}

var _ CategoryRepo = (*CategoryMongo)(nil)

var sortByCategoryName = bson.D{{Key: "category_name", Value: 1}}

// List returns categories sorted ascending by name.
func (r *CategoryMongo) List(ctx context.Context) ([]models.Category, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(sortByCategoryName))
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	var docs []categoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	out := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *CategoryMongo) Create(ctx context.Context, name string) (string, error) {
	doc := categoryDocument{ID: primitive.NewObjectID(), CategoryName: name}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert category %q: %w", name, err)
	}
	return doc.ID.Hex(), nil
}

// GetByID returns (nil, nil) for unknown or malformed ids.
func (r *CategoryMongo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, nil
	}
	var doc categoryDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category %q: %w", id, err)
	}
	c := doc.toModel()
	return &c, nil
}

func (r *CategoryMongo) Replace(ctx context.Context, id, name string) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, categoryDocument{CategoryName: name})
	if err != nil {
		return fmt.Errorf("replace category %q: %w", id, err)
	}
	return nil
}
