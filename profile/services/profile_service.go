package services

import (
	"context"
	"fmt"
	"strings"

	authmodels "github.com/newspulse/api/auth/models"
	"github.com/newspulse/api/auth/repository"
	"github.com/newspulse/api/profile/errors"
	"github.com/newspulse/api/profile/models"
)

// Service reads and edits the caller's own account profile. It reuses the
// account repository; profiles are not a separate table.
type Service interface {
	Get(ctx context.Context, userID int64) (*authmodels.UserResponse, error)
	Update(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*authmodels.UserResponse, error)
}

type service struct {
	repo repository.Repository
}

// NewService constructs the profile service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, userID int64) (*authmodels.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *service) Update(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*authmodels.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
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

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	resp := user.ToResponse()
	return &resp, nil
}
