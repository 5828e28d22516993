package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/newspulse/api/auth/models"
	"github.com/newspulse/api/auth/repository"
	platformemail "github.com/newspulse/api/internal/platform/email"
)

// MockRepository is a test double for the account repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) UpdatePassword(ctx context.Context, id int64, hash []byte) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockRepository) Find(ctx context.Context, filter models.UserFilter, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context, filter models.UserFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSessionStore is a test double for the refresh-session allowlist.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) AddRefreshSession(ctx context.Context, userID int64, jti string, ttl time.Duration) error {
	args := m.Called(ctx, userID, jti, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) HasRefreshSession(ctx context.Context, userID int64, jti string) (bool, error) {
	args := m.Called(ctx, userID, jti)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionStore) RevokeRefreshSessions(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockOTPStore is a test double for the redis OTP store.
type MockOTPStore struct {
	mock.Mock
}

func (m *MockOTPStore) SetOTP(ctx context.Context, email, otp string, ttl time.Duration) error {
	args := m.Called(ctx, email, otp, ttl)
	return args.Error(0)
}

func (m *MockOTPStore) GetOTP(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockOTPStore) DeleteOTP(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockEmailSender is a test double for transactional mail.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg platformemail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
