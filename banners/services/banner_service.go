package services

import (
	"context"
	"fmt"

	"github.com/newspulse/api/banners/errors"
	"github.com/newspulse/api/banners/models"
	"github.com/newspulse/api/banners/repository"
)

// Service exposes the public active-banner list and the admin CRUD.
type Service interface {
	ListActive(ctx context.Context) ([]*models.Banner, error)
	ListAll(ctx context.Context) ([]*models.Banner, error)
	Create(ctx context.Context, req *models.CreateBannerRequest) (*models.Banner, error)
	Update(ctx context.Context, id int64, req *models.UpdateBannerRequest) (*models.Banner, error)
	Delete(ctx context.Context, id int64) error
}

// newsProvider captures the news existence check used when a banner links to
// an article.
type newsProvider interface {
	Exists(ctx context.Context, newsID int64) (bool, error)
}

type service struct {
	repo repository.Repository
	news newsProvider
}

// NewService constructs the banner service.
func NewService(repo repository.Repository, news newsProvider) Service {
	return &service{repo: repo, news: news}
}

func (s *service) ListActive(ctx context.Context) ([]*models.Banner, error) {
	banners, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return banners, nil
}

func (s *service) ListAll(ctx context.Context) ([]*models.Banner, error) {
	banners, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return banners, nil
}

func (s *service) requireNews(ctx context.Context, newsID *int64) error {
	if newsID == nil {
		return nil
	}
	exists, err := s.news.Exists(ctx, *newsID)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if !exists {
		return errors.ErrNewsNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, req *models.CreateBannerRequest) (*models.Banner, error) {
	if req.BannerImage == "" {
		return nil, fmt.Errorf("%w: bannerImage is required", errors.ErrInvalidRequest)
	}
	if err := s.requireNews(ctx, req.NewsID); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	banner := &models.Banner{
		BannerImage: req.BannerImage,
		NewsID:      req.NewsID,
		URL:         req.URL,
		IsActive:    active,
		SortOrder:   req.SortOrder,
	}
	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return banner, nil
}

func (s *service) Update(ctx context.Context, id int64, req *models.UpdateBannerRequest) (*models.Banner, error) {
	banner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrBannerNotFound
	}

	if req.BannerImage != nil {
		banner.BannerImage = *req.BannerImage
	}
	if req.NewsID != nil {
		if err := s.requireNews(ctx, req.NewsID); err != nil {
			return nil, err
		}
		banner.NewsID = req.NewsID
	}
	if req.URL != nil {
		banner.URL = req.URL
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		banner.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(ctx, banner); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return banner, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.ErrBannerNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return nil
}
