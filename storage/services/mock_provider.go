package services

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockBlobProvider is a test double for the object store.
type MockBlobProvider struct {
	mock.Mock
}

func (m *MockBlobProvider) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	args := m.Called(ctx, key, contentType, size, body)
	return args.Error(0)
}

func (m *MockBlobProvider) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
