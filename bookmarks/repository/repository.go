package repository

import "context"

// Repository defines the interface for bookmark-specific database operations.
// Bookmarks are keyed on (news_id, user_id); the unique constraint makes Add
// idempotent under races.
type Repository interface {
	// Add inserts a bookmark; returns true when a row was created.
	Add(ctx context.Context, userID, newsID int64) (bool, error)

	// Remove deletes a bookmark; returns true when a row was removed.
	Remove(ctx context.Context, userID, newsID int64) (bool, error)

	// IsBookmarked reports whether the user bookmarked the article.
	IsBookmarked(ctx context.Context, userID, newsID int64) (bool, error)

	// BookmarkedMap reports bookmark state for a page of articles in one
	// query, defaulting absent ids to false.
	BookmarkedMap(ctx context.Context, userID int64, newsIDs []int64) (map[int64]bool, error)

	// FindNewsIDsByUser returns the user's bookmarked article ids, newest
	// bookmark first.
	FindNewsIDsByUser(ctx context.Context, userID int64, limit, offset int) ([]int64, error)

	// CountByUser returns how many articles the user has bookmarked.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// CountAll returns the total number of bookmarks, for dashboards.
	CountAll(ctx context.Context) (int64, error)
}
