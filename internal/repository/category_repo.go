package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"task_manager/internal/models"

	"github.com/google/uuid"
)

type CategorySQLite struct {
	db *sql.DB
}

func NewCategorySQLite(db *sql.DB) *CategorySQLite { return &CategorySQLite{db: db} }

var _ CategoryRepo = (*CategorySQLite)(nil)

const (
	selectCategoriesSQL    = `SELECT id, category_name FROM categories ORDER BY category_name ASC`
	selectCategoryByIDSQL  = `SELECT id, category_name FROM categories WHERE id = ?`
	insertCategorySQL      = `INSERT INTO categories (id, category_name) VALUES (?, ?)`
	replaceCategorySQL     = `UPDATE categories SET category_name = ? WHERE id = ?`
	defaultCategoryListCap = 16
)

// List returns categories sorted ascending by name.
func (r *CategorySQLite) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	out := make([]models.Category, 0, defaultCategoryListCap)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.CategoryName); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategorySQLite) Create(ctx context.Context, name string) (string, error) {
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertCategorySQL, id, name); err != nil {
		return "", fmt.Errorf("insert category %q: %w", name, err)
	}
	return id, nil
}

// GetByID returns (nil, nil) if no category has that id.
func (r *CategorySQLite) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, selectCategoryByIDSQL, id).Scan(&c.ID, &c.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select category %q: %w", id, err)
	}
	return &c, nil
}

func (r *CategorySQLite) Replace(ctx context.Context, id, name string) error {
	if _, err := r.db.ExecContext(ctx, replaceCategorySQL, name, id); err != nil {
		return fmt.Errorf("replace category %q: %w", id, err)
	}
	return nil
}
