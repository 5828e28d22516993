package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	engerrors "github.com/newspulse/api/engagement/errors"
	"github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/internal/identity"
)

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	who := identity.Registered(7)
	newsID := int64(42)

	t.Run("creates like when absent", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, newsID).Return(true, nil).Once()
		mockRepo.On("AddLike", ctx, newsID, who).Return(true, nil).Once()

		svc := NewService(mockRepo, mockNews, new(MockBookmarkProvider))
		liked, err := svc.ToggleLike(ctx, newsID, who)

		require.NoError(t, err)
		require.True(t, liked)
		mockRepo.AssertExpectations(t)
	})

	t.Run("removes like when present", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, newsID).Return(true, nil).Once()
		mockRepo.On("AddLike", ctx, newsID, who).Return(false, nil).Once()
		mockRepo.On("RemoveLike", ctx, newsID, who).Return(true, nil).Once()

		svc := NewService(mockRepo, mockNews, new(MockBookmarkProvider))
		liked, err := svc.ToggleLike(ctx, newsID, who)

		require.NoError(t, err)
		require.False(t, liked)
		mockRepo.AssertExpectations(t)
	})

	t.Run("involution over repeated calls", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, newsID).Return(true, nil)
		svc := NewService(mockRepo, mockNews, new(MockBookmarkProvider))

		// Drive the store alternation explicitly: odd calls leave one like,
		// even calls leave zero.
		present := false
		results := make([]bool, 0, 4)
		for i := 0; i < 4; i++ {
			if !present {
				mockRepo.On("AddLike", ctx, newsID, who).Return(true, nil).Once()
				present = true
			} else {
				mockRepo.On("AddLike", ctx, newsID, who).Return(false, nil).Once()
				mockRepo.On("RemoveLike", ctx, newsID, who).Return(true, nil).Once()
				present = false
			}
			liked, err := svc.ToggleLike(ctx, newsID, who)
			require.NoError(t, err)
			results = append(results, liked)
		}

		require.Equal(t, []bool{true, false, true, false}, results)
		mockRepo.AssertExpectations(t)
	})

	t.Run("guest may like", func(t *testing.T) {
		guest := identity.Guest("device-abc")
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, newsID).Return(true, nil).Once()
		mockRepo.On("AddLike", ctx, newsID, guest).Return(true, nil).Once()

		svc := NewService(mockRepo, mockNews, new(MockBookmarkProvider))
		liked, err := svc.ToggleLike(ctx, newsID, guest)

		require.NoError(t, err)
		require.True(t, liked)
	})

	t.Run("unresolved identity is rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockNewsProvider), new(MockBookmarkProvider))
		_, err := svc.ToggleLike(ctx, newsID, identity.Identity{})
		require.ErrorIs(t, err, engerrors.ErrUnauthorized)
	})

	t.Run("missing news is reported distinctly", func(t *testing.T) {
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, int64(999)).Return(false, nil).Once()

		svc := NewService(new(MockRepository), mockNews, new(MockBookmarkProvider))
		_, err := svc.ToggleLike(ctx, 999, who)

		require.ErrorIs(t, err, engerrors.ErrNewsNotFound)
		require.NotErrorIs(t, err, engerrors.ErrUnauthorized)
	})
}

func TestRecordView(t *testing.T) {
	ctx := context.Background()
	who := identity.Guest("device-abc")
	newsID := int64(42)

	t.Run("repeat calls stay idempotent", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, newsID).Return(true, nil).Times(3)
		mockRepo.On("EnsureView", ctx, newsID, who).Return(true, nil).Once()
		mockRepo.On("EnsureView", ctx, newsID, who).Return(false, nil).Twice()

		svc := NewService(mockRepo, mockNews, new(MockBookmarkProvider))
		for i := 0; i < 3; i++ {
			require.NoError(t, svc.RecordView(ctx, newsID, who))
		}
		mockRepo.AssertExpectations(t)
	})

	t.Run("requires an identity", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockNewsProvider), new(MockBookmarkProvider))
		err := svc.RecordView(ctx, newsID, identity.Identity{})
		require.ErrorIs(t, err, engerrors.ErrUnauthorized)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, newsID).Return(true, nil).Once()
		mockRepo.On("EnsureView", ctx, newsID, who).Return(false, errors.New("db down")).Once()

		svc := NewService(mockRepo, mockNews, new(MockBookmarkProvider))
		require.Error(t, svc.RecordView(ctx, newsID, who))
	})
}

func TestIsBookmarked(t *testing.T) {
	ctx := context.Background()
	newsID := int64(42)

	t.Run("always false for guests", func(t *testing.T) {
		mockBookmarks := new(MockBookmarkProvider)
		svc := NewService(new(MockRepository), new(MockNewsProvider), mockBookmarks)

		got, err := svc.IsBookmarked(ctx, newsID, identity.Guest("device-abc"))
		require.NoError(t, err)
		require.False(t, got)
		mockBookmarks.AssertNotCalled(t, "IsBookmarked")
	})

	t.Run("delegates for registered users", func(t *testing.T) {
		mockBookmarks := new(MockBookmarkProvider)
		mockBookmarks.On("IsBookmarked", ctx, int64(7), newsID).Return(true, nil).Once()

		svc := NewService(new(MockRepository), new(MockNewsProvider), mockBookmarks)
		got, err := svc.IsBookmarked(ctx, newsID, identity.Registered(7))

		require.NoError(t, err)
		require.True(t, got)
		mockBookmarks.AssertExpectations(t)
	})
}

func TestAnnotate(t *testing.T) {
	ctx := context.Background()
	ids := []int64{1, 2, 3}

	t.Run("guest pages skip the bookmark lookup", func(t *testing.T) {
		guest := identity.Guest("device-abc")
		mockRepo := new(MockRepository)
		mockBookmarks := new(MockBookmarkProvider)
		mockRepo.On("CountsForNews", ctx, ids).Return(map[int64]models.Counts{
			1: {Likes: 5, Views: 50},
			2: {},
			3: {Likes: 1, Views: 2},
		}, nil).Once()
		mockRepo.On("LikedMap", ctx, ids, guest).Return(map[int64]bool{1: true, 2: false, 3: false}, nil).Once()

		svc := NewService(mockRepo, new(MockNewsProvider), mockBookmarks)
		got, err := svc.Annotate(ctx, ids, guest)

		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, models.Annotation{LikeCount: 5, ViewCount: 50, IsLiked: true}, got[1])
		require.Equal(t, models.Annotation{}, got[2])
		mockBookmarks.AssertNotCalled(t, "BookmarkedMap")
		mockRepo.AssertExpectations(t)
	})

	t.Run("registered pages use one presence map per concern", func(t *testing.T) {
		who := identity.Registered(7)
		mockRepo := new(MockRepository)
		mockBookmarks := new(MockBookmarkProvider)
		mockRepo.On("CountsForNews", ctx, ids).Return(map[int64]models.Counts{1: {Likes: 2, Views: 9}, 2: {}, 3: {}}, nil).Once()
		mockRepo.On("LikedMap", ctx, ids, who).Return(map[int64]bool{1: false, 2: true, 3: false}, nil).Once()
		mockBookmarks.On("BookmarkedMap", ctx, int64(7), ids).Return(map[int64]bool{1: true, 2: false, 3: false}, nil).Once()

		svc := NewService(mockRepo, new(MockNewsProvider), mockBookmarks)
		got, err := svc.Annotate(ctx, ids, who)

		require.NoError(t, err)
		require.True(t, got[1].IsBookmarked)
		require.True(t, got[2].IsLiked)
		require.Equal(t, int64(9), got[1].ViewCount)
		mockRepo.AssertExpectations(t)
		mockBookmarks.AssertExpectations(t)
	})
}
