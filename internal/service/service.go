package service

import (
	"context"
	"time"

	"task_manager/internal/models"
	"task_manager/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, password string) (models.Session, error)
	Login(ctx context.Context, username, password string) (models.Session, error)
	Profile(ctx context.Context, username string) (*models.User, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Tasks is the task store facade used by handlers.
type Tasks interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, in TaskInput, createdBy string) (string, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, id string, in TaskInput, editedBy string) error
	Delete(ctx context.Context, id string) error
}

// Categories is the category store facade used by handlers.
type Categories interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (string, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Update(ctx context.Context, id, name string) error
}

// AuthConfig carries the secrets and lifetimes the auth flows need.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Tasks      Tasks
	Categories Categories
}

func NewService(repos *repository.Repository, cfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, cfg),
		Tasks:         NewTaskService(repos.Tasks),
		Categories:    NewCategoryService(repos.Categories),
	}
}
