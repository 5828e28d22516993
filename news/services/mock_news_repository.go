package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	engmodels "github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/internal/identity"
	"github.com/newspulse/api/news/models"
	"github.com/newspulse/api/news/repository"
)

// MockNewsRepository is a test double for the news repository.
type MockNewsRepository struct {
	mock.Mock
}

var _ repository.NewsRepository = (*MockNewsRepository)(nil)

func (m *MockNewsRepository) Create(ctx context.Context, news *models.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id int64) (*models.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockNewsRepository) Find(ctx context.Context, filter repository.NewsFilter, sort string, limit, offset int) ([]*models.News, error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.News), args.Error(1)
}

func (m *MockNewsRepository) FindByIDs(ctx context.Context, ids []int64) ([]*models.News, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.News), args.Error(1)
}

func (m *MockNewsRepository) Count(ctx context.Context, filter repository.NewsFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNewsRepository) Update(ctx context.Context, news *models.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEngagementEngine is a test double for the engagement service subset.
type MockEngagementEngine struct {
	mock.Mock
}

func (m *MockEngagementEngine) RecordView(ctx context.Context, newsID int64, who identity.Identity) error {
	args := m.Called(ctx, newsID, who)
	return args.Error(0)
}

func (m *MockEngagementEngine) Annotate(ctx context.Context, newsIDs []int64, who identity.Identity) (map[int64]engmodels.Annotation, error) {
	args := m.Called(ctx, newsIDs, who)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]engmodels.Annotation), args.Error(1)
}

// MockCategoryProvider is a test double for the category existence check.
type MockCategoryProvider struct {
	mock.Mock
}

func (m *MockCategoryProvider) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
