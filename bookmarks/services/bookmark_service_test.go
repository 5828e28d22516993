package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	bmerrors "github.com/newspulse/api/bookmarks/errors"
	"github.com/newspulse/api/internal/identity"
	newsmodels "github.com/newspulse/api/news/models"
)

func TestToggle(t *testing.T) {
	ctx := context.Background()
	who := identity.Registered(7)
	newsID := int64(42)

	t.Run("creates bookmark when absent", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, newsID).Return(true, nil).Once()
		mockRepo.On("Add", ctx, int64(7), newsID).Return(true, nil).Once()

		svc := NewService(mockRepo, mockNews)
		bookmarked, err := svc.Toggle(ctx, newsID, who)

		require.NoError(t, err)
		require.True(t, bookmarked)
		mockRepo.AssertExpectations(t)
	})

	t.Run("removes bookmark when present", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, newsID).Return(true, nil).Once()
		mockRepo.On("Add", ctx, int64(7), newsID).Return(false, nil).Once()
		mockRepo.On("Remove", ctx, int64(7), newsID).Return(true, nil).Once()

		svc := NewService(mockRepo, mockNews)
		bookmarked, err := svc.Toggle(ctx, newsID, who)

		require.NoError(t, err)
		require.False(t, bookmarked)
		mockRepo.AssertExpectations(t)
	})

	t.Run("guests cannot bookmark", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockNewsProvider))

		_, err := svc.Toggle(ctx, newsID, identity.Guest("device-abc"))

		require.ErrorIs(t, err, bmerrors.ErrGuestForbidden)
		mockRepo.AssertNotCalled(t, "Add")
	})

	t.Run("zero identity is unauthorized, not forbidden", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockNewsProvider))
		_, err := svc.Toggle(ctx, newsID, identity.Identity{})
		require.ErrorIs(t, err, bmerrors.ErrUnauthorized)
		require.NotErrorIs(t, err, bmerrors.ErrGuestForbidden)
	})

	t.Run("missing news is not found", func(t *testing.T) {
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, int64(999)).Return(false, nil).Once()

		svc := NewService(new(MockRepository), mockNews)
		_, err := svc.Toggle(ctx, 999, who)
		require.ErrorIs(t, err, bmerrors.ErrNewsNotFound)
	})
}

func TestBookmarkList(t *testing.T) {
	ctx := context.Background()
	who := identity.Registered(7)

	t.Run("hydrates ids in bookmark order", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		ids := []int64{5, 3, 9}

		mockRepo.On("CountByUser", ctx, int64(7)).Return(int64(3), nil).Once()
		mockRepo.On("FindNewsIDsByUser", ctx, int64(7), 10, 0).Return(ids, nil).Once()
		mockNews.On("AnnotatedByIDs", ctx, ids, who).Return([]newsmodels.NewsResponse{
			{ID: 5, IsBookmarked: true},
			{ID: 3, IsBookmarked: true},
			{ID: 9, IsBookmarked: true},
		}, nil).Once()

		svc := NewService(mockRepo, mockNews)
		resp, err := svc.List(ctx, who, 1, 10)

		require.NoError(t, err)
		require.Equal(t, int64(3), resp.Total)
		require.Len(t, resp.News, 3)
		require.Equal(t, int64(5), resp.News[0].ID)
		mockRepo.AssertExpectations(t)
		mockNews.AssertExpectations(t)
	})

	t.Run("empty page skips hydration", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)

		mockRepo.On("CountByUser", ctx, int64(7)).Return(int64(0), nil).Once()
		mockRepo.On("FindNewsIDsByUser", ctx, int64(7), 10, 0).Return([]int64{}, nil).Once()

		svc := NewService(mockRepo, mockNews)
		resp, err := svc.List(ctx, who, 1, 10)

		require.NoError(t, err)
		require.Empty(t, resp.News)
		mockNews.AssertNotCalled(t, "AnnotatedByIDs")
	})

	t.Run("guests cannot list bookmarks", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockNewsProvider))
		_, err := svc.List(ctx, identity.Guest("device-abc"), 1, 10)
		require.ErrorIs(t, err, bmerrors.ErrGuestForbidden)
	})
}
