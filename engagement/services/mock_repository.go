package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/engagement/repository"
	"github.com/newspulse/api/internal/identity"
)

// MockRepository is a test double for the engagement repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) AddLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	args := m.Called(ctx, newsID, who)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) RemoveLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	args := m.Called(ctx, newsID, who)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) EnsureView(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	args := m.Called(ctx, newsID, who)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CountLikes(ctx context.Context, newsID int64) (int64, error) {
	args := m.Called(ctx, newsID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountViews(ctx context.Context, newsID int64) (int64, error) {
	args := m.Called(ctx, newsID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountsForNews(ctx context.Context, newsIDs []int64) (map[int64]models.Counts, error) {
	args := m.Called(ctx, newsIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]models.Counts), args.Error(1)
}

func (m *MockRepository) LikedMap(ctx context.Context, newsIDs []int64, who identity.Identity) (map[int64]bool, error) {
	args := m.Called(ctx, newsIDs, who)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *MockRepository) IsLiked(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	args := m.Called(ctx, newsID, who)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CountAllLikes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountAllViews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockNewsProvider is a test double for the news existence check.
type MockNewsProvider struct {
	mock.Mock
}

func (m *MockNewsProvider) Exists(ctx context.Context, newsID int64) (bool, error) {
	args := m.Called(ctx, newsID)
	return args.Bool(0), args.Error(1)
}

// MockBookmarkProvider is a test double for the bookmark presence lookups.
type MockBookmarkProvider struct {
	mock.Mock
}

func (m *MockBookmarkProvider) IsBookmarked(ctx context.Context, userID, newsID int64) (bool, error) {
	args := m.Called(ctx, userID, newsID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkProvider) BookmarkedMap(ctx context.Context, userID int64, newsIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, newsIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}
