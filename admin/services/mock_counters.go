package services

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNewsCounter is a testify mock of the news count dependency.
type MockNewsCounter struct {
	mock.Mock
}

func (m *MockNewsCounter) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoriesCounter is a testify mock of the categories count dependency.
type MockCategoriesCounter struct {
	mock.Mock
}

func (m *MockCategoriesCounter) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEngagementCounter is a testify mock of the engagement count dependency.
type MockEngagementCounter struct {
	mock.Mock
}

func (m *MockEngagementCounter) CountAllLikes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementCounter) CountAllViews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookmarksCounter is a testify mock of the bookmarks count dependency.
type MockBookmarksCounter struct {
	mock.Mock
}

func (m *MockBookmarksCounter) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
