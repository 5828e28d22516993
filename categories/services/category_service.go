package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/newspulse/api/categories/errors"
	"github.com/newspulse/api/categories/models"
	"github.com/newspulse/api/categories/repository"
)

// Service exposes the public category list and the admin CRUD.
type Service interface {
	List(ctx context.Context) ([]models.CategoryResponse, error)
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.CategoryResponse, error)
	Delete(ctx context.Context, id int64) error

	// Exists backs the category check on news writes.
	Exists(ctx context.Context, id int64) (bool, error)

	// CountAll reports the number of categories, for dashboards.
	CountAll(ctx context.Context) (int64, error)
}

type service struct {
	repo repository.Repository
}

// NewService constructs the category service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]models.CategoryResponse, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	result := make([]models.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, c.ToResponse())
	}
	return result, nil
}

func (s *service) requireUniqueName(ctx context.Context, name string, excludeID int64) error {
	taken, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if taken {
		return errors.ErrDuplicateName
	}
	return nil
}

func (s *service) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errors.ErrInvalidRequest)
	}
	if err := s.requireUniqueName(ctx, name, 0); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errors.ErrInvalidRequest)
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrCategoryNotFound
	}
	if err := s.requireUniqueName(ctx, name, id); err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if !exists {
		return errors.ErrCategoryNotFound
	}

	// Articles in the category survive; the store nulls their category.
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return nil
}

func (s *service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *service) CountAll(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}
