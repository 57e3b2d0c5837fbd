package repository

import (
	"context"
	"database/sql"

	"task_manager/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Authorization is the credential store.
type Authorization interface {
	Create(ctx context.Context, username, hash string) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TaskRepo persists tasks. Lookups that miss return (nil, nil).
type TaskRepo interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, t models.Task) (string, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Replace(ctx context.Context, id string, t models.Task) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepo persists categories. List is sorted ascending by name.
type CategoryRepo interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (string, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Replace(ctx context.Context, id, name string) error
}

type Repository struct {
	Auth       Authorization
	Tasks      TaskRepo
	Categories CategoryRepo
}

// NewRepository wires the SQLite-backed stores.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:       NewUserRepository(db),
		Tasks:      NewTaskSQLite(db),
		Categories: NewCategorySQLite(db),
	}
}

// NewMongoRepository wires the MongoDB-backed stores.
func NewMongoRepository(db *mongo.Database) *Repository {
	return &Repository{
		Auth:       NewUserMongo(db),
		Tasks:      NewTaskMongo(db),
		Categories: NewCategoryMongo(db),
	}
}
