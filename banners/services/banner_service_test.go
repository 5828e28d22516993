package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/newspulse/api/banners/errors"
	"github.com/newspulse/api/banners/models"
)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestCreateBanner(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active and checks the linked article", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, int64(7)).Return(true, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(b *models.Banner) bool {
			return b.BannerImage == "https://cdn.example.com/uploads/a.jpg" &&
				b.IsActive && b.NewsID != nil && *b.NewsID == 7
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Banner).ID = 3
		}).Return(nil).Once()

		svc := NewService(mockRepo, mockNews)
		banner, err := svc.Create(ctx, &models.CreateBannerRequest{
			BannerImage: "https://cdn.example.com/uploads/a.jpg",
			NewsID:      int64Ptr(7),
		})

		require.NoError(t, err)
		require.Equal(t, int64(3), banner.ID)
		require.True(t, banner.IsActive)
		mockRepo.AssertExpectations(t)
		mockNews.AssertExpectations(t)
	})

	t.Run("rejects a missing image", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)

		svc := NewService(mockRepo, mockNews)
		_, err := svc.Create(ctx, &models.CreateBannerRequest{})

		require.ErrorIs(t, err, errors.ErrInvalidRequest)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects a link to a missing article", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockNews.On("Exists", ctx, int64(99)).Return(false, nil).Once()

		svc := NewService(mockRepo, mockNews)
		_, err := svc.Create(ctx, &models.CreateBannerRequest{
			BannerImage: "https://cdn.example.com/uploads/a.jpg",
			NewsID:      int64Ptr(99),
		})

		require.ErrorIs(t, err, errors.ErrNewsNotFound)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestUpdateBanner(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the active flag and keeps the rest", func(t *testing.T) {
		stored := &models.Banner{ID: 3, BannerImage: "img", IsActive: true, SortOrder: 2}
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockRepo.On("FindByID", ctx, int64(3)).Return(stored, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(b *models.Banner) bool {
			return b.ID == 3 && !b.IsActive && b.BannerImage == "img" && b.SortOrder == 2
		})).Return(nil).Once()

		svc := NewService(mockRepo, mockNews)
		banner, err := svc.Update(ctx, 3, &models.UpdateBannerRequest{IsActive: boolPtr(false)})

		require.NoError(t, err)
		require.False(t, banner.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing banner is not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockRepo.On("FindByID", ctx, int64(9)).Return(nil, errors.ErrBannerNotFound).Once()

		svc := NewService(mockRepo, mockNews)
		_, err := svc.Update(ctx, 9, &models.UpdateBannerRequest{})

		require.ErrorIs(t, err, errors.ErrBannerNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestListBanners(t *testing.T) {
	ctx := context.Background()

	t.Run("public list only sees active banners", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockNews := new(MockNewsProvider)
		mockRepo.On("FindActive", ctx).Return([]*models.Banner{
			{ID: 1, IsActive: true, SortOrder: 1},
			{ID: 2, IsActive: true, SortOrder: 5},
		}, nil).Once()

		svc := NewService(mockRepo, mockNews)
		banners, err := svc.ListActive(ctx)

		require.NoError(t, err)
		require.Len(t, banners, 2)
		mockRepo.AssertNotCalled(t, "FindAll")
	})
}
