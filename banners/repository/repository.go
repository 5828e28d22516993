package repository

import (
	"context"

	"github.com/newspulse/api/banners/models"
)

// Repository defines the interface for banner-specific database operations.
type Repository interface {
	// Create inserts a banner and fills in its generated id.
	Create(ctx context.Context, banner *models.Banner) error

	// FindActive returns active banners in display order.
	FindActive(ctx context.Context) ([]*models.Banner, error)

	// FindAll returns all banners in display order, for the admin panel.
	FindAll(ctx context.Context) ([]*models.Banner, error)

	// FindByID retrieves a banner by its id.
	FindByID(ctx context.Context, id int64) (*models.Banner, error)

	// Update updates an existing banner.
	Update(ctx context.Context, banner *models.Banner) error

	// Delete removes a banner.
	Delete(ctx context.Context, id int64) error
}
