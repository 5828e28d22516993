package models

import (
	"time"

	"github.com/newspulse/api/internal/utils"
)

// Category groups articles for filtering on the app home screen.
type Category struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CategoryResponse is a category as returned to clients.
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToResponse converts a row into the client shape.
func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: utils.FormatDisplayDate(c.CreatedAt),
		UpdatedAt: utils.FormatDisplayDate(c.UpdatedAt),
	}
}

// CreateCategoryRequest is the admin payload for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest is the admin payload for renaming a category.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}
