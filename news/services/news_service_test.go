package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	engmodels "github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/internal/identity"
	newserrors "github.com/newspulse/api/news/errors"
	"github.com/newspulse/api/news/models"
	"github.com/newspulse/api/news/repository"
)

func strPtr(s string) *string { return &s }

func sampleNews(id int64) *models.News {
	img := "https://cdn.example.com/a.jpg"
	return &models.News{
		ID:          id,
		Title:       "Sample",
		Description: "Body",
		ImageURL:    &img,
		CreatedAt:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	who := identity.Guest("device-abc")

	t.Run("annotates the page with one batch lookup", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockEng := new(MockEngagementEngine)
		items := []*models.News{sampleNews(1), sampleNews(2)}

		mockRepo.On("Count", ctx, repository.NewsFilter{}).Return(int64(2), nil).Once()
		mockRepo.On("Find", ctx, repository.NewsFilter{}, models.SortRecent, 10, 0).Return(items, nil).Once()
		mockEng.On("Annotate", ctx, []int64{1, 2}, who).Return(map[int64]engmodels.Annotation{
			1: {LikeCount: 3, ViewCount: 40, IsLiked: true},
			2: {},
		}, nil).Once()

		svc := NewService(mockRepo, mockEng, new(MockCategoryProvider))
		resp, err := svc.List(ctx, models.ListQuery{}, who)

		require.NoError(t, err)
		require.Len(t, resp.News, 2)
		require.Equal(t, int64(3), resp.News[0].LikesCount)
		require.Equal(t, int64(40), resp.News[0].ViewsCount)
		require.True(t, resp.News[0].IsLiked)
		require.False(t, resp.News[1].IsLiked)
		require.Equal(t, int64(2), resp.Total)
		require.Equal(t, 1, resp.TotalPages)
		require.False(t, resp.HasNext)
		mockRepo.AssertExpectations(t)
		mockEng.AssertExpectations(t)
	})

	t.Run("pagination metadata on a middle page", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockEng := new(MockEngagementEngine)
		items := []*models.News{sampleNews(11), sampleNews(12)}

		mockRepo.On("Count", ctx, repository.NewsFilter{}).Return(int64(6), nil).Once()
		mockRepo.On("Find", ctx, repository.NewsFilter{}, models.SortRecent, 2, 2).Return(items, nil).Once()
		mockEng.On("Annotate", ctx, []int64{11, 12}, who).Return(map[int64]engmodels.Annotation{}, nil).Once()

		svc := NewService(mockRepo, mockEng, new(MockCategoryProvider))
		resp, err := svc.List(ctx, models.ListQuery{Page: 2, Limit: 2}, who)

		require.NoError(t, err)
		require.Equal(t, 3, resp.TotalPages)
		require.Equal(t, 2, resp.CurrentPage)
		require.True(t, resp.HasNext)
		require.True(t, resp.HasPrev)
		require.Equal(t, 3, *resp.NextPage)
		require.Equal(t, 1, *resp.PrevPage)
	})

	t.Run("page beyond range is empty, not an error", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockEng := new(MockEngagementEngine)

		mockRepo.On("Count", ctx, repository.NewsFilter{}).Return(int64(3), nil).Once()
		mockRepo.On("Find", ctx, repository.NewsFilter{}, models.SortRecent, 10, 90).Return([]*models.News{}, nil).Once()

		svc := NewService(mockRepo, mockEng, new(MockCategoryProvider))
		resp, err := svc.List(ctx, models.ListQuery{Page: 10}, who)

		require.NoError(t, err)
		require.Empty(t, resp.News)
		require.Equal(t, int64(3), resp.Total)
		require.False(t, resp.HasNext)
		mockEng.AssertNotCalled(t, "Annotate")
	})

	t.Run("trending restricts to the recent window and sorts by views", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockEng := new(MockEngagementEngine)

		countFilter := mock.MatchedBy(func(f repository.NewsFilter) bool {
			return f.CreatedAfter != nil && time.Since(*f.CreatedAfter) > 6*24*time.Hour
		})
		mockRepo.On("Count", ctx, countFilter).Return(int64(0), nil).Once()
		mockRepo.On("Find", ctx, countFilter, models.SortTrending, 10, 0).Return([]*models.News{}, nil).Once()

		svc := NewService(mockRepo, mockEng, new(MockCategoryProvider))
		_, err := svc.List(ctx, models.ListQuery{Type: models.SortTrending}, who)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("category and search filters are forwarded", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockEng := new(MockEngagementEngine)

		wantFilter := mock.MatchedBy(func(f repository.NewsFilter) bool {
			return f.CategoryID != nil && *f.CategoryID == 4 &&
				f.SearchText != nil && *f.SearchText == "election"
		})
		mockRepo.On("Count", ctx, wantFilter).Return(int64(0), nil).Once()
		mockRepo.On("Find", ctx, wantFilter, models.SortRecent, 10, 0).Return([]*models.News{}, nil).Once()

		svc := NewService(mockRepo, mockEng, new(MockCategoryProvider))
		_, err := svc.List(ctx, models.ListQuery{CategoryID: 4, Search: "election"}, who)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	who := identity.Registered(7)

	t.Run("records a view then annotates", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockEng := new(MockEngagementEngine)
		mockRepo.On("FindByID", ctx, int64(42)).Return(sampleNews(42), nil).Once()
		mockEng.On("RecordView", ctx, int64(42), who).Return(nil).Once()
		mockEng.On("Annotate", ctx, []int64{42}, who).Return(map[int64]engmodels.Annotation{
			42: {ViewCount: 1, LikeCount: 0},
		}, nil).Once()

		svc := NewService(mockRepo, mockEng, new(MockCategoryProvider))
		resp, err := svc.GetByID(ctx, 42, who)

		require.NoError(t, err)
		require.Equal(t, int64(42), resp.ID)
		require.Equal(t, int64(1), resp.ViewsCount)
		require.Equal(t, "14 Mar 2026", resp.CreatedAt)
		mockEng.AssertExpectations(t)
	})

	t.Run("rejects an unresolved identity before touching the store", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		svc := NewService(mockRepo, new(MockEngagementEngine), new(MockCategoryProvider))

		_, err := svc.GetByID(ctx, 42, identity.Identity{})

		require.ErrorIs(t, err, newserrors.ErrUnauthorized)
		mockRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("missing article is not found", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockEng := new(MockEngagementEngine)
		mockRepo.On("FindByID", ctx, int64(999)).Return(nil, fmt.Errorf("news not found: %w", sql.ErrNoRows)).Once()

		svc := NewService(mockRepo, mockEng, new(MockCategoryProvider))
		_, err := svc.GetByID(ctx, 999, who)

		require.ErrorIs(t, err, newserrors.ErrNewsNotFound)
		mockEng.AssertNotCalled(t, "RecordView")
	})

	t.Run("store failure is not a 404", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockEng := new(MockEngagementEngine)
		mockRepo.On("FindByID", ctx, int64(42)).Return(nil, errors.New("connection refused")).Once()

		svc := NewService(mockRepo, mockEng, new(MockCategoryProvider))
		_, err := svc.GetByID(ctx, 42, who)

		require.ErrorIs(t, err, newserrors.ErrDatabaseOperation)
		require.NotErrorIs(t, err, newserrors.ErrNewsNotFound)
		mockEng.AssertNotCalled(t, "RecordView")
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with an image", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.News")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.News).ID = 5
		}).Return(nil).Once()

		svc := NewService(mockRepo, new(MockEngagementEngine), new(MockCategoryProvider))
		resp, err := svc.Create(ctx, &models.CreateNewsRequest{
			Title:       "Title",
			Description: "Body",
			ImageURL:    strPtr("https://cdn.example.com/a.jpg"),
		})

		require.NoError(t, err)
		require.Equal(t, int64(5), resp.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects both media", func(t *testing.T) {
		svc := NewService(new(MockNewsRepository), new(MockEngagementEngine), new(MockCategoryProvider))
		_, err := svc.Create(ctx, &models.CreateNewsRequest{
			Title:       "Title",
			Description: "Body",
			ImageURL:    strPtr("a.jpg"),
			VideoURL:    strPtr("a.mp4"),
		})
		require.ErrorIs(t, err, newserrors.ErrInvalidMedium)
	})

	t.Run("rejects neither medium", func(t *testing.T) {
		svc := NewService(new(MockNewsRepository), new(MockEngagementEngine), new(MockCategoryProvider))
		_, err := svc.Create(ctx, &models.CreateNewsRequest{Title: "Title", Description: "Body"})
		require.ErrorIs(t, err, newserrors.ErrInvalidMedium)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		mockCategories := new(MockCategoryProvider)
		mockCategories.On("Exists", ctx, int64(99)).Return(false, nil).Once()

		svc := NewService(new(MockNewsRepository), new(MockEngagementEngine), mockCategories)
		catID := int64(99)
		_, err := svc.Create(ctx, &models.CreateNewsRequest{
			Title:       "Title",
			Description: "Body",
			ImageURL:    strPtr("a.jpg"),
			CategoryID:  &catID,
		})
		require.ErrorIs(t, err, newserrors.ErrCategoryNotFound)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("switching to video clears the image", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockRepo.On("FindByID", ctx, int64(5)).Return(sampleNews(5), nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(n *models.News) bool {
			return n.ImageURL == nil && n.VideoURL != nil && *n.VideoURL == "a.mp4"
		})).Return(nil).Once()

		svc := NewService(mockRepo, new(MockEngagementEngine), new(MockCategoryProvider))
		resp, err := svc.Update(ctx, 5, &models.UpdateNewsRequest{VideoURL: strPtr("a.mp4")})

		require.NoError(t, err)
		require.Nil(t, resp.ImageURL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing article is not found", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockRepo.On("FindByID", ctx, int64(999)).Return(nil, fmt.Errorf("news not found: %w", sql.ErrNoRows)).Once()

		svc := NewService(mockRepo, new(MockEngagementEngine), new(MockCategoryProvider))
		_, err := svc.Update(ctx, 999, &models.UpdateNewsRequest{})
		require.ErrorIs(t, err, newserrors.ErrNewsNotFound)
	})

	t.Run("store failure is not a 404", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockRepo.On("FindByID", ctx, int64(5)).Return(nil, errors.New("connection refused")).Once()

		svc := NewService(mockRepo, new(MockEngagementEngine), new(MockCategoryProvider))
		_, err := svc.Update(ctx, 5, &models.UpdateNewsRequest{})

		require.ErrorIs(t, err, newserrors.ErrDatabaseOperation)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing article", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockRepo.On("Exists", ctx, int64(5)).Return(true, nil).Once()
		mockRepo.On("Delete", ctx, int64(5)).Return(nil).Once()

		svc := NewService(mockRepo, new(MockEngagementEngine), new(MockCategoryProvider))
		require.NoError(t, svc.Delete(ctx, 5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing article is not found", func(t *testing.T) {
		mockRepo := new(MockNewsRepository)
		mockRepo.On("Exists", ctx, int64(999)).Return(false, nil).Once()

		svc := NewService(mockRepo, new(MockEngagementEngine), new(MockCategoryProvider))
		require.ErrorIs(t, svc.Delete(ctx, 999), newserrors.ErrNewsNotFound)
	})
}
