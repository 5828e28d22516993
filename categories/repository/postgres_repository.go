package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/newspulse/api/categories/models"
	"github.com/newspulse/api/internal/database/postgres"
)

// postgresRepository implements Repository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL repository for categories.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

func (r *postgresRepository) Create(ctx context.Context, category *models.Category) error {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &category.ID,
		`INSERT INTO categories (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`,
		category.Name, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*models.Category, error) {
	var rows []models.Category
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows,
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}

	result := make([]*models.Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &category,
		`SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category not found: %w", err)
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &category, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1) AND id <> $2)`,
		name, excludeID)
	if err != nil {
		return false, fmt.Errorf("category exists by name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, category *models.Category) error {
	category.UpdatedAt = time.Now()

	result, err := r.getExecutor(ctx).ExecContext(ctx,
		`UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`,
		category.ID, category.Name, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, `SELECT COUNT(*) FROM categories`); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
