package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/newspulse/api/banners/models"
	"github.com/newspulse/api/internal/database/postgres"
)

// postgresRepository implements Repository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL repository for banners.
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

const bannerColumns = `id, banner_image, news_id, url, is_active, sort_order, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, banner *models.Banner) error {
	now := time.Now()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	query := `
		INSERT INTO banners (banner_image, news_id, url, is_active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &banner.ID, query,
		banner.BannerImage, banner.NewsID, banner.URL, banner.IsActive, banner.SortOrder,
		banner.CreatedAt, banner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

func (r *postgresRepository) find(ctx context.Context, where string) ([]*models.Banner, error) {
	query := fmt.Sprintf(`SELECT %s FROM banners %s ORDER BY sort_order ASC, id ASC`, bannerColumns, where)

	var rows []models.Banner
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query); err != nil {
		return nil, fmt.Errorf("find banners: %w", err)
	}

	result := make([]*models.Banner, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *postgresRepository) FindActive(ctx context.Context) ([]*models.Banner, error) {
	return r.find(ctx, "WHERE is_active")
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*models.Banner, error) {
	return r.find(ctx, "")
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*models.Banner, error) {
	query := fmt.Sprintf(`SELECT %s FROM banners WHERE id = $1`, bannerColumns)

	var banner models.Banner
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &banner, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("banner not found: %w", err)
		}
		return nil, fmt.Errorf("find banner: %w", err)
	}
	return &banner, nil
}

func (r *postgresRepository) Update(ctx context.Context, banner *models.Banner) error {
	banner.UpdatedAt = time.Now()

	query := `
		UPDATE banners SET
			banner_image = $2,
			news_id = $3,
			url = $4,
			is_active = $5,
			sort_order = $6,
			updated_at = $7
		WHERE id = $1
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query,
		banner.ID, banner.BannerImage, banner.NewsID, banner.URL, banner.IsActive,
		banner.SortOrder, banner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
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
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
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
