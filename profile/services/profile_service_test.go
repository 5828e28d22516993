package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authmodels "github.com/newspulse/api/auth/models"
	authservices "github.com/newspulse/api/auth/services"
	proferrors "github.com/newspulse/api/profile/errors"
	"github.com/newspulse/api/profile/models"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdate(t *testing.T) {
	ctx := context.Background()
	stored := &authmodels.User{ID: 7, Name: "Ada", Email: "ada@example.com", Role: "user"}

	t.Run("updates only the provided fields", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("FindByID", ctx, int64(7)).Return(stored, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(u *authmodels.User) bool {
			return u.Name == "Ada Lovelace" && u.Email == "ada@example.com"
		})).Return(nil).Once()

		svc := NewService(mockRepo)
		resp, err := svc.Update(ctx, 7, &models.UpdateProfileRequest{Name: strPtr("Ada Lovelace")})

		require.NoError(t, err)
		require.Equal(t, "Ada Lovelace", resp.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("FindByID", ctx, int64(7)).Return(stored, nil).Once()

		svc := NewService(mockRepo)
		_, err := svc.Update(ctx, 7, &models.UpdateProfileRequest{Name: strPtr("   ")})

		require.ErrorIs(t, err, proferrors.ErrInvalidRequest)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("missing account is not found", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("FindByID", ctx, int64(99)).Return(nil, proferrors.ErrUserNotFound).Once()

		svc := NewService(mockRepo)
		_, err := svc.Get(ctx, 99)
		require.ErrorIs(t, err, proferrors.ErrUserNotFound)
	})
}
