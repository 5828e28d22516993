package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/newspulse/api/internal/identity"
	"github.com/newspulse/api/internal/testutil"
)

// TestPostgresEngagementRepository_Integration exercises the uniqueness
// guards that make the toggle and ensure operations idempotent against a real
// database. Run with RUN_DB_TESTS=1.
func TestPostgresEngagementRepository_Integration(t *testing.T) {
	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	client := testutil.SetupDB(t)
	repo := NewPostgresRepository(client)
	ctx := context.Background()

	var newsID int64
	err := client.DB().QueryRowContext(ctx,
		`INSERT INTO news (title, description) VALUES ('Fresh story', 'body') RETURNING id`).Scan(&newsID)
	require.NoError(t, err)

	var userID int64
	err = client.DB().QueryRowContext(ctx,
		`INSERT INTO users (name, email, mobile, password) VALUES ('Reader', 'reader@example.com', '5550001', 'x') RETURNING id`).Scan(&userID)
	require.NoError(t, err)

	reader := identity.Registered(userID)
	guest := identity.Guest("guest-a")

	t.Run("like toggles through insert then delete", func(t *testing.T) {
		inserted, err := repo.AddLike(ctx, newsID, reader)
		require.NoError(t, err)
		require.True(t, inserted)

		count, err := repo.CountLikes(ctx, newsID)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)

		removed, err := repo.RemoveLike(ctx, newsID, reader)
		require.NoError(t, err)
		require.True(t, removed)

		count, err = repo.CountLikes(ctx, newsID)
		require.NoError(t, err)
		require.Equal(t, int64(0), count)

		inserted, err = repo.AddLike(ctx, newsID, reader)
		require.NoError(t, err)
		require.True(t, inserted, "liking again after an unlike inserts a fresh row")
	})

	t.Run("duplicate like insert is a no-op", func(t *testing.T) {
		inserted, err := repo.AddLike(ctx, newsID, reader)
		require.NoError(t, err)
		require.False(t, inserted, "the unique index absorbs the duplicate")

		count, err := repo.CountLikes(ctx, newsID)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})

	t.Run("user and guest likes on the same article are distinct rows", func(t *testing.T) {
		inserted, err := repo.AddLike(ctx, newsID, guest)
		require.NoError(t, err)
		require.True(t, inserted)

		count, err := repo.CountLikes(ctx, newsID)
		require.NoError(t, err)
		require.Equal(t, int64(2), count)

		liked, err := repo.IsLiked(ctx, newsID, guest)
		require.NoError(t, err)
		require.True(t, liked)
	})

	t.Run("view is recorded at most once per identity", func(t *testing.T) {
		recorded, err := repo.EnsureView(ctx, newsID, reader)
		require.NoError(t, err)
		require.True(t, recorded)

		recorded, err = repo.EnsureView(ctx, newsID, reader)
		require.NoError(t, err)
		require.False(t, recorded, "a repeat view never adds a row")

		count, err := repo.CountViews(ctx, newsID)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})

	t.Run("batch counts cover every requested id", func(t *testing.T) {
		var emptyID int64
		err := client.DB().QueryRowContext(ctx,
			`INSERT INTO news (title, description) VALUES ('Quiet story', 'body') RETURNING id`).Scan(&emptyID)
		require.NoError(t, err)

		counts, err := repo.CountsForNews(ctx, []int64{newsID, emptyID})
		require.NoError(t, err)

		require.Equal(t, int64(2), counts[newsID].Likes)
		require.Equal(t, int64(1), counts[newsID].Views)
		require.Equal(t, int64(0), counts[emptyID].Likes)
		require.Equal(t, int64(0), counts[emptyID].Views)
	})
}
