package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	platformconfig "github.com/newspulse/api/internal/platform/config"
)

// Client wraps sqlx.DB with connection pooling and transaction helpers. All
// repositories share one Client owned by the process entry point.
type Client struct {
	db *sqlx.DB
}

// NewClient connects to PostgreSQL and verifies the connection.
func NewClient(ctx context.Context, cfg *platformconfig.PostgresConfig) (*Client, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Client{db: db}, nil
}

func buildConnString(cfg *platformconfig.PostgresConfig) string {
	parts := []string{
		fmt.Sprintf("host=%s", cfg.Host),
		fmt.Sprintf("port=%d", cfg.Port),
		fmt.Sprintf("dbname=%s", cfg.Database),
	}
	if cfg.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", cfg.Username))
	}
	if cfg.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", cfg.Password))
	}
	parts = append(parts, fmt.Sprintf("sslmode=%s", cfg.SSLMode))
	if cfg.ConnectTimeout > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", cfg.ConnectTimeout))
	}
	return strings.Join(parts, " ")
}

// DB returns the underlying *sqlx.DB.
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Ping tests the database connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// BeginTxx starts a transaction.
func (c *Client) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return c.db.BeginTxx(ctx, opts)
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// HealthCheck reports connection health with a bounded wait.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.Ping(ctx)
}
