package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/internal/database/postgres"
	"github.com/newspulse/api/internal/identity"
)

// postgresRepository implements Repository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL repository for engagement records.
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

// identityArgs maps the tagged union onto the two nullable columns.
func identityArgs(who identity.Identity) (sql.NullInt64, sql.NullString) {
	var userID sql.NullInt64
	var guestID sql.NullString
	if who.IsRegistered() {
		userID = sql.NullInt64{Int64: who.UserID(), Valid: true}
	} else if who.IsGuest() {
		guestID = sql.NullString{String: who.GuestID(), Valid: true}
	}
	return userID, guestID
}

// identityPredicate returns the WHERE fragment selecting the identity's rows,
// with the value bound at the given placeholder position.
func identityPredicate(who identity.Identity, pos int) (string, interface{}) {
	if who.IsRegistered() {
		return fmt.Sprintf("user_id = $%d", pos), who.UserID()
	}
	return fmt.Sprintf("guest_id = $%d", pos), who.GuestID()
}

func (r *postgresRepository) AddLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	// The partial unique indexes on (news_id, user_id) and (news_id, guest_id)
	// turn a racing duplicate insert into a no-op instead of an error.
	query := `
		INSERT INTO likes (news_id, user_id, guest_id)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`

	userID, guestID := identityArgs(who)
	result, err := r.getExecutor(ctx).ExecContext(ctx, query, newsID, userID, guestID)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *postgresRepository) RemoveLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	pred, arg := identityPredicate(who, 2)
	query := fmt.Sprintf(`DELETE FROM likes WHERE news_id = $1 AND %s`, pred)

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, newsID, arg)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *postgresRepository) EnsureView(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	query := `
		INSERT INTO news_views (news_id, user_id, guest_id)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`

	userID, guestID := identityArgs(who)
	result, err := r.getExecutor(ctx).ExecContext(ctx, query, newsID, userID, guestID)
	if err != nil {
		return false, fmt.Errorf("insert view: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *postgresRepository) CountLikes(ctx context.Context, newsID int64) (int64, error) {
	var count int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count,
		`SELECT COUNT(*) FROM likes WHERE news_id = $1`, newsID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountViews(ctx context.Context, newsID int64) (int64, error) {
	var count int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count,
		`SELECT COUNT(*) FROM news_views WHERE news_id = $1`, newsID)
	if err != nil {
		return 0, fmt.Errorf("count views: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountsForNews(ctx context.Context, newsIDs []int64) (map[int64]models.Counts, error) {
	result := make(map[int64]models.Counts, len(newsIDs))
	for _, id := range newsIDs {
		result[id] = models.Counts{}
	}
	if len(newsIDs) == 0 {
		return result, nil
	}

	// One aggregate query for the whole page instead of a subquery per row.
	query := `
		SELECT ids.id AS news_id,
		       COALESCE(l.cnt, 0) AS likes,
		       COALESCE(v.cnt, 0) AS views
		FROM unnest($1::bigint[]) AS ids(id)
		LEFT JOIN (SELECT news_id, COUNT(*) AS cnt FROM likes GROUP BY news_id) l ON l.news_id = ids.id
		LEFT JOIN (SELECT news_id, COUNT(*) AS cnt FROM news_views GROUP BY news_id) v ON v.news_id = ids.id
	`

	type countsRow struct {
		NewsID int64 `db:"news_id"`
		Likes  int64 `db:"likes"`
		Views  int64 `db:"views"`
	}

	var rows []countsRow
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, pq.Array(newsIDs)); err != nil {
		return nil, fmt.Errorf("counts for news: %w", err)
	}

	for _, row := range rows {
		result[row.NewsID] = models.Counts{Likes: row.Likes, Views: row.Views}
	}
	return result, nil
}

func (r *postgresRepository) LikedMap(ctx context.Context, newsIDs []int64, who identity.Identity) (map[int64]bool, error) {
	result := make(map[int64]bool, len(newsIDs))
	for _, id := range newsIDs {
		result[id] = false
	}
	if len(newsIDs) == 0 || who.IsZero() {
		return result, nil
	}

	pred, arg := identityPredicate(who, 2)
	query := fmt.Sprintf(`SELECT news_id FROM likes WHERE news_id = ANY($1::bigint[]) AND %s`, pred)

	var liked []int64
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &liked, query, pq.Array(newsIDs), arg); err != nil {
		return nil, fmt.Errorf("liked map: %w", err)
	}

	for _, id := range liked {
		result[id] = true
	}
	return result, nil
}

func (r *postgresRepository) IsLiked(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	if who.IsZero() {
		return false, nil
	}

	pred, arg := identityPredicate(who, 2)
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM likes WHERE news_id = $1 AND %s)`, pred)

	var exists bool
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists, query, newsID, arg); err != nil {
		return false, fmt.Errorf("is liked: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CountAllLikes(ctx context.Context) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, `SELECT COUNT(*) FROM likes`); err != nil {
		return 0, fmt.Errorf("count all likes: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountAllViews(ctx context.Context) (int64, error) {
	var count int64
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, `SELECT COUNT(*) FROM news_views`); err != nil {
		return 0, fmt.Errorf("count all views: %w", err)
	}
	return count, nil
}
