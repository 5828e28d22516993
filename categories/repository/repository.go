package repository

import (
	"context"

	"github.com/newspulse/api/categories/models"
)

// Repository defines the interface for category-specific database operations.
type Repository interface {
	// Create inserts a category and fills in its generated id.
	Create(ctx context.Context, category *models.Category) error

	// FindAll returns all categories ordered by name.
	FindAll(ctx context.Context) ([]*models.Category, error)

	// FindByID retrieves a category by its id.
	FindByID(ctx context.Context, id int64) (*models.Category, error)

	// Exists reports whether a category exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ExistsByName reports whether a category with the name exists,
	// case-insensitively, excluding the given id (0 to exclude none).
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)

	// Update renames a category.
	Update(ctx context.Context, category *models.Category) error

	// Delete removes a category; news rows keep existing with a null
	// category via ON DELETE SET NULL.
	Delete(ctx context.Context, id int64) error

	// CountAll returns the number of categories, for dashboards.
	CountAll(ctx context.Context) (int64, error)
}
