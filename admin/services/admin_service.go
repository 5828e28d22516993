package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/newspulse/api/admin/errors"
	"github.com/newspulse/api/admin/models"
	authmodels "github.com/newspulse/api/auth/models"
	authrepo "github.com/newspulse/api/auth/repository"
	authservices "github.com/newspulse/api/auth/services"
	"github.com/newspulse/api/internal/types"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// Service backs the admin panel: staff account management, app-user listing
// and the dashboard counts.
type Service interface {
	// CreateStaff creates an account with the staff role.
	CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*authmodels.UserResponse, error)

	// ListStaff returns staff accounts with pagination and search.
	ListStaff(ctx context.Context, page, limit int, search string) (*models.UserListResponse, error)

	// UpdateStaff edits a staff account's profile fields.
	UpdateStaff(ctx context.Context, id int64, req *models.UpdateStaffRequest) (*authmodels.UserResponse, error)

	// DeleteStaff removes a staff account. Admins cannot delete themselves.
	DeleteStaff(ctx context.Context, callerID, id int64) error

	// ListUsers returns app-user accounts with pagination and search.
	ListUsers(ctx context.Context, page, limit int, search string) (*models.UserListResponse, error)

	// Dashboard recomputes the aggregate counts from the store.
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
}

// Counters expose the aggregate counts each module already maintains.
type newsCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

type categoriesCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

type engagementCounter interface {
	CountAllLikes(ctx context.Context) (int64, error)
	CountAllViews(ctx context.Context) (int64, error)
}

type bookmarksCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

type service struct {
	users      authrepo.Repository
	news       newsCounter
	categories categoriesCounter
	engagement engagementCounter
	bookmarks  bookmarksCounter
}

// NewService constructs the admin service.
func NewService(users authrepo.Repository, news newsCounter, categories categoriesCounter, engagement engagementCounter, bookmarks bookmarksCounter) Service {
	return &service{users: users, news: news, categories: categories, engagement: engagement, bookmarks: bookmarks}
}

func (s *service) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*authmodels.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", errors.ErrInvalidRequest)
	}
	if err := authservices.CheckPasswordStrength(req.Password, name, email); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", errors.ErrInvalidRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &authmodels.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     types.StaffRole,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *service) list(ctx context.Context, role string, page, limit int, search string) (*models.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := authmodels.UserFilter{Role: role, Search: search}
	total, err := s.users.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	users, err := s.users.Find(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	items := make([]authmodels.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, u.ToResponse())
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.UserListResponse{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1 && total > 0,
		Users:       items,
	}, nil
}

func (s *service) ListStaff(ctx context.Context, page, limit int, search string) (*models.UserListResponse, error) {
	return s.list(ctx, types.StaffRole, page, limit, search)
}

func (s *service) ListUsers(ctx context.Context, page, limit int, search string) (*models.UserListResponse, error) {
	return s.list(ctx, types.UserRole, page, limit, search)
}

func (s *service) UpdateStaff(ctx context.Context, id int64, req *models.UpdateStaffRequest) (*authmodels.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	if user.Role != types.StaffRole {
		return nil, errors.ErrNotStaff
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", errors.ErrInvalidRequest)
		}
		user.Name = name
	}
	if req.Mobile != nil {
		user.Mobile = req.Mobile
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *service) DeleteStaff(ctx context.Context, callerID, id int64) error {
	if callerID == id {
		return errors.ErrSelfDelete
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return errors.ErrUserNotFound
	}
	if user.Role != types.StaffRole {
		return errors.ErrNotStaff
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return nil
}

func (s *service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	users, err := s.users.Count(ctx, authmodels.UserFilter{Role: types.UserRole})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	news, err := s.news.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	categories, err := s.categories.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	likes, err := s.engagement.CountAllLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	views, err := s.engagement.CountAllViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	bookmarks, err := s.bookmarks.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	return &models.DashboardResponse{
		Users:      users,
		News:       news,
		Categories: categories,
		Likes:      likes,
		Views:      views,
		Bookmarks:  bookmarks,
	}, nil
}
