package repository

import (
	"context"
	"time"

	"github.com/newspulse/api/news/models"
)

// NewsFilter represents filtering criteria for querying news.
type NewsFilter struct {
	CategoryID   *int64
	SearchText   *string
	CreatedAfter *time.Time
}

// NewsRepository defines the interface for news-specific database operations.
type NewsRepository interface {
	// Create inserts a new article and fills in its generated id.
	Create(ctx context.Context, news *models.News) error

	// FindByID retrieves an article by its id.
	FindByID(ctx context.Context, id int64) (*models.News, error)

	// Exists reports whether an article exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Find retrieves articles matching the filter with pagination. The sort
	// argument is one of the models.Sort* modes; engagement-ordered modes use
	// aggregate joins inside the query, not per-row lookups.
	Find(ctx context.Context, filter NewsFilter, sort string, limit, offset int) ([]*models.News, error)

	// FindByIDs retrieves the given articles, preserving input order.
	FindByIDs(ctx context.Context, ids []int64) ([]*models.News, error)

	// Count returns the number of articles matching the filter.
	Count(ctx context.Context, filter NewsFilter) (int64, error)

	// Update updates an existing article.
	Update(ctx context.Context, news *models.News) error

	// Delete removes an article; engagement records cascade in the store.
	Delete(ctx context.Context, id int64) error
}
