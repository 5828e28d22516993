package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/newspulse/api/internal/database/postgres"
)

// postgresRepository implements Repository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL repository for bookmarks.
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

func (r *postgresRepository) Add(ctx context.Context, userID, newsID int64) (bool, error) {
	query := `
		INSERT INTO bookmarks (news_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (news_id, user_id) DO NOTHING
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, newsID, userID)
	if err != nil {
		return false, fmt.Errorf("insert bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *postgresRepository) Remove(ctx context.Context, userID, newsID int64) (bool, error) {
	result, err := r.getExecutor(ctx).ExecContext(ctx,
		`DELETE FROM bookmarks WHERE news_id = $1 AND user_id = $2`, newsID, userID)
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *postgresRepository) IsBookmarked(ctx context.Context, userID, newsID int64) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists,
		`SELECT EXISTS (SELECT 1 FROM bookmarks WHERE news_id = $1 AND user_id = $2)`, newsID, userID)
	if err != nil {
		return false, fmt.Errorf("is bookmarked: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) BookmarkedMap(ctx context.Context, userID int64, newsIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(newsIDs))
	for _, id := range newsIDs {
		result[id] = false
	}
	if len(newsIDs) == 0 {
		return result, nil
	}

	query := `SELECT news_id FROM bookmarks WHERE user_id = $1 AND news_id = ANY($2::bigint[])`

	var bookmarked []int64
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &bookmarked, query, userID, pq.Array(newsIDs)); err != nil {
		return nil, fmt.Errorf("bookmarked map: %w", err)
	}

	for _, id := range bookmarked {
		result[id] = true
	}
	return result, nil
}

func (r *postgresRepository) FindNewsIDsByUser(ctx context.Context, userID int64, limit, offset int) ([]int64, error) {
	query := `
		SELECT news_id FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	var ids []int64
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &ids, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("find bookmarks: %w", err)
	}
	return ids, nil
}

func (r *postgresRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count,
		`SELECT COUNT(*) FROM bookmarks WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, `SELECT COUNT(*) FROM bookmarks`); err != nil {
		return 0, fmt.Errorf("count all bookmarks: %w", err)
	}
	return count, nil
}
