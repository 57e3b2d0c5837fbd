package service

import (
	"context"
	"fmt"
	"strings"

	"task_manager/internal/models"
	"task_manager/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns categories sorted ascending by name.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name string) (string, error) {
	if err := validateCategoryName(name); err != nil {
		return "", err
	}
	return s.categoryRepo.Create(ctx, name)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id, name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	return s.categoryRepo.Replace(ctx, id, name)
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: missing category_name", ErrInvalidInput)
	}
	return nil
}
