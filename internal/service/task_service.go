package service

import (
	"context"

	"task_manager/internal/models"
	"task_manager/internal/repository"
)

type TaskService struct {
	taskRepo repository.TaskRepo
}

func NewTaskService(taskRepo repository.TaskRepo) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.List(ctx)
}

// Create stores a new task authored by createdBy. Category existence and the
// due date format are not checked.
func (s *TaskService) Create(ctx context.Context, in TaskInput, createdBy string) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	return s.taskRepo.Create(ctx, in.toTask(createdBy))
}

// Get returns nil when the task does not exist.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// Update replaces the whole record. CreatedBy becomes editedBy, so the
// original author is not preserved.
func (s *TaskService) Update(ctx context.Context, id string, in TaskInput, editedBy string) error {
	if err := in.validate(); err != nil {
		return err
	}
	return s.taskRepo.Replace(ctx, id, in.toTask(editedBy))
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}
