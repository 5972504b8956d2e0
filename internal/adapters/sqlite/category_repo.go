package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/ports/secondary"
)

// CategoryRepository implements secondary.CategoryRepository with SQLite.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new SQLite category repository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category row in insertion order.
func (r *CategoryRepository) List(ctx context.Context) ([]*secondary.CategoryRecord, error) {
	return r.query(ctx, "SELECT id, name, created_at FROM categories ORDER BY rowid")
}

// ListByName returns every row named exactly name.
func (r *CategoryRepository) ListByName(ctx context.Context, name string) ([]*secondary.CategoryRecord, error) {
	return r.query(ctx, "SELECT id, name, created_at FROM categories WHERE name = ? ORDER BY rowid", name)
}

// Create persists a new category row with a generated ID.
func (r *CategoryRepository) Create(ctx context.Context, category *secondary.CategoryRecord) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, "INSERT INTO categories (id, name) VALUES (?, ?)", id, category.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create category: %w", err)
	}
	return id, nil
}

// Delete removes one category row.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("category %s: %w", id, fault.ErrNotFound)
	}

	return nil
}

func (r *CategoryRepository) query(ctx context.Context, query string, args ...any) ([]*secondary.CategoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*secondary.CategoryRecord
	for rows.Next() {
		var createdAt sql.NullTime
		record := &secondary.CategoryRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if createdAt.Valid {
			record.CreatedAt = createdAt.Time.Format(time.RFC3339)
		}
		categories = append(categories, record)
	}

	return categories, rows.Err()
}

// Ensure CategoryRepository implements the interface
var _ secondary.CategoryRepository = (*CategoryRepository)(nil)
