package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/newspulse/api/admin/errors"
	"github.com/newspulse/api/admin/models"
	authmodels "github.com/newspulse/api/auth/models"
	authservices "github.com/newspulse/api/auth/services"
	"github.com/newspulse/api/internal/types"
)

func strPtr(s string) *string { return &s }

func newCounters() (*MockNewsCounter, *MockCategoriesCounter, *MockEngagementCounter, *MockBookmarksCounter) {
	return new(MockNewsCounter), new(MockCategoriesCounter), new(MockEngagementCounter), new(MockBookmarksCounter)
}

func TestCreateStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a staff account with a hashed password", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("ExistsByEmail", ctx, "editor@example.com").Return(false, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *authmodels.User) bool {
			return u.Email == "editor@example.com" &&
				u.Role == types.StaffRole &&
				bcrypt.CompareHashAndPassword(u.Password, []byte("correct horse battery")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*authmodels.User).ID = 12
		}).Return(nil).Once()

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		resp, err := svc.CreateStaff(ctx, &models.CreateStaffRequest{
			Name:     "Editor",
			Email:    "  Editor@Example.com ",
			Password: "correct horse battery",
		})

		require.NoError(t, err)
		require.Equal(t, int64(12), resp.ID)
		require.Equal(t, types.StaffRole, resp.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects a weak password before touching the store", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		_, err := svc.CreateStaff(ctx, &models.CreateStaffRequest{
			Name:     "Editor",
			Email:    "editor@example.com",
			Password: "12345678",
		})

		require.ErrorIs(t, err, errors.ErrInvalidRequest)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("ExistsByEmail", ctx, "editor@example.com").Return(true, nil).Once()

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		_, err := svc.CreateStaff(ctx, &models.CreateStaffRequest{
			Name:     "Editor",
			Email:    "editor@example.com",
			Password: "correct horse battery",
		})

		require.ErrorIs(t, err, errors.ErrInvalidRequest)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("filters to the user role and reports pagination", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		filter := authmodels.UserFilter{Role: types.UserRole, Search: "ada"}
		mockRepo.On("Count", ctx, filter).Return(int64(21), nil).Once()
		mockRepo.On("Find", ctx, filter, 10, 10).Return([]*authmodels.User{
			{ID: 3, Name: "Ada", Email: "ada@example.com", Role: types.UserRole},
		}, nil).Once()

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		resp, err := svc.ListUsers(ctx, 2, 10, "ada")

		require.NoError(t, err)
		require.Equal(t, int64(21), resp.Total)
		require.Equal(t, 3, resp.TotalPages)
		require.True(t, resp.HasNext)
		require.True(t, resp.HasPrev)
		require.Len(t, resp.Users, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("staff listing uses the staff role", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		filter := authmodels.UserFilter{Role: types.StaffRole}
		mockRepo.On("Count", ctx, filter).Return(int64(0), nil).Once()
		mockRepo.On("Find", ctx, filter, 10, 0).Return([]*authmodels.User{}, nil).Once()

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		resp, err := svc.ListStaff(ctx, 1, 10, "")

		require.NoError(t, err)
		require.Empty(t, resp.Users)
		require.False(t, resp.HasNext)
		require.False(t, resp.HasPrev)
	})
}

func TestUpdateStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("edits a staff account", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("FindByID", ctx, int64(12)).Return(&authmodels.User{ID: 12, Name: "Editor", Role: types.StaffRole}, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(u *authmodels.User) bool {
			return u.ID == 12 && u.Name == "Senior Editor"
		})).Return(nil).Once()

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		resp, err := svc.UpdateStaff(ctx, 12, &models.UpdateStaffRequest{Name: strPtr("Senior Editor")})

		require.NoError(t, err)
		require.Equal(t, "Senior Editor", resp.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("refuses to edit a non-staff account", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("FindByID", ctx, int64(1)).Return(&authmodels.User{ID: 1, Role: types.AdminRole}, nil).Once()

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		_, err := svc.UpdateStaff(ctx, 1, &models.UpdateStaffRequest{Name: strPtr("Root")})

		require.ErrorIs(t, err, errors.ErrNotStaff)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestDeleteStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a staff account", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("FindByID", ctx, int64(12)).Return(&authmodels.User{ID: 12, Role: types.StaffRole}, nil).Once()
		mockRepo.On("Delete", ctx, int64(12)).Return(nil).Once()

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		require.NoError(t, svc.DeleteStaff(ctx, 1, 12))
		mockRepo.AssertExpectations(t)
	})

	t.Run("refuses self-deletion without a lookup", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		err := svc.DeleteStaff(ctx, 12, 12)

		require.ErrorIs(t, err, errors.ErrSelfDelete)
		mockRepo.AssertNotCalled(t, "FindByID")
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("refuses to remove an app user", func(t *testing.T) {
		mockRepo := new(authservices.MockRepository)
		mockRepo.On("FindByID", ctx, int64(3)).Return(&authmodels.User{ID: 3, Role: types.UserRole}, nil).Once()

		news, cats, eng, bms := newCounters()
		svc := NewService(mockRepo, news, cats, eng, bms)
		err := svc.DeleteStaff(ctx, 1, 3)

		require.ErrorIs(t, err, errors.ErrNotStaff)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(authservices.MockRepository)
	mockRepo.On("Count", ctx, authmodels.UserFilter{Role: types.UserRole}).Return(int64(120), nil).Once()

	news, cats, eng, bms := newCounters()
	news.On("CountAll", ctx).Return(int64(45), nil).Once()
	cats.On("CountAll", ctx).Return(int64(6), nil).Once()
	eng.On("CountAllLikes", ctx).Return(int64(300), nil).Once()
	eng.On("CountAllViews", ctx).Return(int64(900), nil).Once()
	bms.On("CountAll", ctx).Return(int64(80), nil).Once()

	svc := NewService(mockRepo, news, cats, eng, bms)
	resp, err := svc.Dashboard(ctx)

	require.NoError(t, err)
	require.Equal(t, &models.DashboardResponse{
		Users:      120,
		News:       45,
		Categories: 6,
		Likes:      300,
		Views:      900,
		Bookmarks:  80,
	}, resp)
}
