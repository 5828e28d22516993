package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/newspulse/api/banners/models"
	"github.com/newspulse/api/banners/repository"
)

// MockRepository is a test double for the banner repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, banner *models.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *MockRepository) FindActive(ctx context.Context) ([]*models.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Banner), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*models.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Banner), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*models.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Banner), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, banner *models.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNewsProvider is a test double for the news existence check.
type MockNewsProvider struct {
	mock.Mock
}

func (m *MockNewsProvider) Exists(ctx context.Context, newsID int64) (bool, error) {
	args := m.Called(ctx, newsID)
	return args.Bool(0), args.Error(1)
}
