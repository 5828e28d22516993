package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	caterrors "github.com/newspulse/api/categories/errors"
	"github.com/newspulse/api/categories/models"
)

func TestCategoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with a trimmed name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("ExistsByName", ctx, "Politics", int64(0)).Return(false, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Category) bool {
			return c.Name == "Politics"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Category).ID = 3
		}).Return(nil).Once()

		svc := NewService(mockRepo)
		resp, err := svc.Create(ctx, &models.CreateCategoryRequest{Name: "  Politics  "})

		require.NoError(t, err)
		require.Equal(t, int64(3), resp.ID)
		require.Equal(t, "Politics", resp.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("ExistsByName", ctx, "Politics", int64(0)).Return(true, nil).Once()

		svc := NewService(mockRepo)
		_, err := svc.Create(ctx, &models.CreateCategoryRequest{Name: "Politics"})

		require.ErrorIs(t, err, caterrors.ErrDuplicateName)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, &models.CreateCategoryRequest{Name: "   "})
		require.ErrorIs(t, err, caterrors.ErrInvalidRequest)
	})
}

func TestCategoryUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("renaming to its own name is allowed", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, int64(3)).Return(&models.Category{ID: 3, Name: "Politics"}, nil).Once()
		mockRepo.On("ExistsByName", ctx, "Politics", int64(3)).Return(false, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*models.Category")).Return(nil).Once()

		svc := NewService(mockRepo)
		resp, err := svc.Update(ctx, 3, &models.UpdateCategoryRequest{Name: "Politics"})

		require.NoError(t, err)
		require.Equal(t, "Politics", resp.Name)
	})

	t.Run("missing category is not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, int64(99)).Return(nil, caterrors.ErrCategoryNotFound).Once()

		svc := NewService(mockRepo)
		_, err := svc.Update(ctx, 99, &models.UpdateCategoryRequest{Name: "Sports"})
		require.ErrorIs(t, err, caterrors.ErrCategoryNotFound)
	})
}

func TestCategoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing category", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Exists", ctx, int64(3)).Return(true, nil).Once()
		mockRepo.On("Delete", ctx, int64(3)).Return(nil).Once()

		svc := NewService(mockRepo)
		require.NoError(t, svc.Delete(ctx, 3))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing category is not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Exists", ctx, int64(99)).Return(false, nil).Once()

		svc := NewService(mockRepo)
		require.ErrorIs(t, svc.Delete(ctx, 99), caterrors.ErrCategoryNotFound)
	})
}
