package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"task_manager/internal/models"

	"github.com/google/uuid"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite { return &TaskSQLite{db: db} }

var _ TaskRepo = (*TaskSQLite)(nil)

const (
	taskColumns = `id, category_name, task_name, task_description, is_urgent, due_date, created_by`

	selectTasksSQL    = `SELECT ` + taskColumns + ` FROM tasks`
	selectTaskByIDSQL = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	insertTaskSQL     = `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	replaceTaskSQL    = `
		UPDATE tasks SET
			category_name = ?,
			task_name = ?,
			task_description = ?,
			is_urgent = ?,
			due_date = ?,
			created_by = ?
		WHERE id = ?
	`
	deleteTaskSQL = `DELETE FROM tasks WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		t      models.Task
		urgent string
	)
	if err := row.Scan(&t.ID, &t.CategoryName, &t.TaskName, &t.TaskDescription, &urgent, &t.DueDate, &t.CreatedBy); err != nil {
		return models.Task{}, err
	}
	t.IsUrgent = models.ParseUrgentFlag(urgent)
	return t, nil
}

// List returns every task in storage order.
func (r *TaskSQLite) List(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksSQL)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 16)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts t under a fresh id. t.ID is ignored.
func (r *TaskSQLite) Create(ctx context.Context, t models.Task) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, insertTaskSQL,
		id,
		t.CategoryName,
		t.TaskName,
		t.TaskDescription,
		models.UrgentFlag(t.IsUrgent),
		t.DueDate,
		t.CreatedBy,
	)
	if err != nil {
		return "", fmt.Errorf("insert task %q: %w", t.TaskName, err)
	}
	return id, nil
}

// GetByID returns (nil, nil) if no task has that id.
func (r *TaskSQLite) GetByID(ctx context.Context, id string) (*models.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectTaskByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %q: %w", id, err)
	}
	return &t, nil
}

// Replace overwrites every column of the task. A missing id is a no-op.
func (r *TaskSQLite) Replace(ctx context.Context, id string, t models.Task) error {
	_, err := r.db.ExecContext(ctx, replaceTaskSQL,
		t.CategoryName,
		t.TaskName,
		t.TaskDescription,
		models.UrgentFlag(t.IsUrgent),
		t.DueDate,
		t.CreatedBy,
		id,
	)
	if err != nil {
		return fmt.Errorf("replace task %q: %w", id, err)
	}
	return nil
}

// Delete removes the task. Deleting an absent id is not an error.
func (r *TaskSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteTaskSQL, id); err != nil {
		return fmt.Errorf("delete task %q: %w", id, err)
	}
	return nil
}
