package repository

import (
	"context"

	"github.com/newspulse/api/auth/models"
)

// Repository defines the interface for account-specific database operations.
type Repository interface {
	// Create inserts an account and fills in its generated id.
	Create(ctx context.Context, user *models.User) error

	// FindByEmail retrieves an account by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID retrieves an account by its id.
	FindByID(ctx context.Context, id int64) (*models.User, error)

	// ExistsByEmail reports whether an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update updates name, mobile and avatar.
	Update(ctx context.Context, user *models.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, hash []byte) error

	// Find returns accounts matching the filter with pagination, newest
	// first.
	Find(ctx context.Context, filter models.UserFilter, limit, offset int) ([]*models.User, error)

	// Count returns the number of accounts matching the filter.
	Count(ctx context.Context, filter models.UserFilter) (int64, error)

	// Delete removes an account. Its engagement rows cascade away; its
	// bookmarks go with them.
	Delete(ctx context.Context, id int64) error
}
