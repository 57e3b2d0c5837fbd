package service

import (
	"errors"
	"fmt"
	"strings"

	"task_manager/internal/models"
)

// ErrInvalidInput is returned when a required field is missing.
var ErrInvalidInput = errors.New("invalid input")

// TaskInput is the user-editable part of a task. Only TaskName and
// CategoryName are required; DueDate is kept verbatim.
type TaskInput struct {
	CategoryName    string
	TaskName        string
	TaskDescription string
	IsUrgent        bool
	DueDate         string
}

func (in TaskInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.CategoryName) == "" {
		missing = append(missing, "category_name")
	}
	if strings.TrimSpace(in.TaskName) == "" {
		missing = append(missing, "task_name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// toTask builds the full record written on create and on replace.
func (in TaskInput) toTask(author string) models.Task {
	return models.Task{
		CategoryName:    in.CategoryName,
		TaskName:        in.TaskName,
		TaskDescription: in.TaskDescription,
		IsUrgent:        in.IsUrgent,
		DueDate:         in.DueDate,
		CreatedBy:       author,
	}
}
