package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/newspulse/api/internal/database/postgres"
	"github.com/newspulse/api/news/models"
)

// postgresRepository implements NewsRepository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL repository for news.
func NewPostgresRepository(client *postgres.Client) NewsRepository {
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

const newsColumns = `id, title, description, image_url, video_url, category_id, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, news *models.News) error {
	query := `
		INSERT INTO news (title, description, image_url, video_url, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	now := time.Now()
	if news.CreatedAt.IsZero() {
		news.CreatedAt = now
	}
	if news.UpdatedAt.IsZero() {
		news.UpdatedAt = now
	}

	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &news.ID, query,
		news.Title, news.Description, news.ImageURL, news.VideoURL, news.CategoryID,
		news.CreatedAt, news.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*models.News, error) {
	query := fmt.Sprintf(`SELECT %s FROM news WHERE id = $1`, newsColumns)

	var news models.News
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &news, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("news not found: %w", err)
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return &news, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists,
		`SELECT EXISTS (SELECT 1 FROM news WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("news exists: %w", err)
	}
	return exists, nil
}

// buildWhere renders the filter into a WHERE clause with positional args.
func buildWhere(filter NewsFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf("n.category_id = $%d", len(args)))
	}
	if filter.SearchText != nil && *filter.SearchText != "" {
		args = append(args, "%"+*filter.SearchText+"%")
		pos := len(args)
		conds = append(conds, fmt.Sprintf("(n.title ILIKE $%d OR n.description ILIKE $%d)", pos, pos))
	}
	if filter.CreatedAfter != nil {
		args = append(args, *filter.CreatedAfter)
		conds = append(conds, fmt.Sprintf("n.created_at >= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *postgresRepository) Find(ctx context.Context, filter NewsFilter, sort string, limit, offset int) ([]*models.News, error) {
	where, args := buildWhere(filter)

	// Engagement-ordered modes join the aggregate once for the whole result
	// set; recency ordering needs no join at all.
	var joins, orderBy string
	switch sort {
	case models.SortTrending:
		joins = `LEFT JOIN (SELECT news_id, COUNT(*) AS cnt FROM news_views GROUP BY news_id) v ON v.news_id = n.id`
		orderBy = `ORDER BY COALESCE(v.cnt, 0) DESC, n.created_at DESC, n.id DESC`
	case models.SortTopmost:
		joins = `LEFT JOIN (SELECT news_id, COUNT(*) AS cnt FROM likes GROUP BY news_id) l ON l.news_id = n.id`
		orderBy = `ORDER BY COALESCE(l.cnt, 0) DESC, n.created_at DESC, n.id DESC`
	default:
		orderBy = `ORDER BY n.created_at DESC, n.id DESC`
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT n.id, n.title, n.description, n.image_url, n.video_url, n.category_id, n.created_at, n.updated_at
		FROM news n
		%s
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, joins, where, orderBy, len(args)-1, len(args))

	var rows []models.News
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find news: %w", err)
	}

	result := make([]*models.News, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *postgresRepository) FindByIDs(ctx context.Context, ids []int64) ([]*models.News, error) {
	if len(ids) == 0 {
		return []*models.News{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM news WHERE id = ANY($1::bigint[])`, newsColumns)

	var rows []models.News
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("find news by ids: %w", err)
	}

	byID := make(map[int64]*models.News, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}

	// Preserve caller order; ids of deleted articles are skipped.
	result := make([]*models.News, 0, len(ids))
	for _, id := range ids {
		if n, ok := byID[id]; ok {
			result = append(result, n)
		}
	}
	return result, nil
}

func (r *postgresRepository) Count(ctx context.Context, filter NewsFilter) (int64, error) {
	where, args := buildWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM news n %s`, where)

	var count int64
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, query, args...); err != nil {
		return 0, fmt.Errorf("count news: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) Update(ctx context.Context, news *models.News) error {
	news.UpdatedAt = time.Now()

	query := `
		UPDATE news SET
			title = $2,
			description = $3,
			image_url = $4,
			video_url = $5,
			category_id = $6,
			updated_at = $7
		WHERE id = $1
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query,
		news.ID, news.Title, news.Description, news.ImageURL, news.VideoURL,
		news.CategoryID, news.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update news: %w", err)
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
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
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
