package repository

import (
	"context"

	"github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/internal/identity"
)

// Repository defines data access for like and view records. Uniqueness of
// (news, identity) pairs is enforced by the store, not by callers; that is
// what makes the toggle and ensure operations safe under concurrent
// duplicates.
type Repository interface {
	// AddLike stores a like; returns true when a new row was inserted.
	AddLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error)

	// RemoveLike deletes a like; returns true when a row was deleted.
	RemoveLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error)

	// EnsureView records a view if none exists for the pair; returns true when
	// a new row was inserted.
	EnsureView(ctx context.Context, newsID int64, who identity.Identity) (bool, error)

	// CountLikes returns the number of like rows for the news item.
	CountLikes(ctx context.Context, newsID int64) (int64, error)

	// CountViews returns the number of view rows for the news item.
	CountViews(ctx context.Context, newsID int64) (int64, error)

	// CountsForNews returns aggregate counts for every requested id in one
	// round trip. Ids without rows are present with zero counts.
	CountsForNews(ctx context.Context, newsIDs []int64) (map[int64]models.Counts, error)

	// LikedMap returns a presence map for the identity over the requested ids.
	LikedMap(ctx context.Context, newsIDs []int64, who identity.Identity) (map[int64]bool, error)

	// IsLiked reports whether the identity has liked the news item.
	IsLiked(ctx context.Context, newsID int64, who identity.Identity) (bool, error)

	// CountAllLikes and CountAllViews feed the admin dashboard.
	CountAllLikes(ctx context.Context) (int64, error)
	CountAllViews(ctx context.Context) (int64, error)
}
