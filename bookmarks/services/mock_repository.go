package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/newspulse/api/bookmarks/repository"
	"github.com/newspulse/api/internal/identity"
	newsmodels "github.com/newspulse/api/news/models"
)

// MockRepository is a test double for the bookmark repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Add(ctx context.Context, userID, newsID int64) (bool, error) {
	args := m.Called(ctx, userID, newsID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, userID, newsID int64) (bool, error) {
	args := m.Called(ctx, userID, newsID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) IsBookmarked(ctx context.Context, userID, newsID int64) (bool, error) {
	args := m.Called(ctx, userID, newsID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) BookmarkedMap(ctx context.Context, userID int64, newsIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, newsIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *MockRepository) FindNewsIDsByUser(ctx context.Context, userID int64, limit, offset int) ([]int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockNewsProvider is a test double for the news hydration surface.
type MockNewsProvider struct {
	mock.Mock
}

func (m *MockNewsProvider) Exists(ctx context.Context, newsID int64) (bool, error) {
	args := m.Called(ctx, newsID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNewsProvider) AnnotatedByIDs(ctx context.Context, ids []int64, who identity.Identity) ([]newsmodels.NewsResponse, error) {
	args := m.Called(ctx, ids, who)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]newsmodels.NewsResponse), args.Error(1)
}
