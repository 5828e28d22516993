package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/newspulse/api/auth/models"
	"github.com/newspulse/api/internal/database/postgres"
)

// postgresRepository implements Repository using raw SQL queries.
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL repository for accounts.
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

const userColumns = `id, name, email, password, mobile, avatar, role, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (name, email, password, mobile, avatar, role, created_at, updated_at)
		VALUES ($1, LOWER($2), $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user.ID, query,
		user.Name, user.Email, user.Password, user.Mobile, user.Avatar, user.Role,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = LOWER($1)`, userColumns)

	var user models.User
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var user models.User
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = LOWER($1))`, email)
	if err != nil {
		return false, fmt.Errorf("user exists by email: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	result, err := r.getExecutor(ctx).ExecContext(ctx,
		`UPDATE users SET name = $2, mobile = $3, avatar = $4, updated_at = $5 WHERE id = $1`,
		user.ID, user.Name, user.Mobile, user.Avatar, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
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

func (r *postgresRepository) UpdatePassword(ctx context.Context, id int64, hash []byte) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx,
		`UPDATE users SET password = $2, updated_at = $3 WHERE id = $1`, id, hash, time.Now())
	if err != nil {
		return fmt.Errorf("update password: %w", err)
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

func buildUserWhere(filter models.UserFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Role != "" {
		args = append(args, filter.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		pos := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", pos, pos))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *postgresRepository) Find(ctx context.Context, filter models.UserFilter, limit, offset int) ([]*models.User, error) {
	where, args := buildUserWhere(filter)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT %s FROM users
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, userColumns, where, len(args)-1, len(args))

	var rows []models.User
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	result := make([]*models.User, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *postgresRepository) Count(ctx context.Context, filter models.UserFilter) (int64, error) {
	where, args := buildUserWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, where)

	var count int64
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, query, args...); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
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
