package models

import (
	"time"

	newsmodels "github.com/newspulse/api/news/models"
)

// Bookmark is a saved article for a registered user. Guests cannot bookmark,
// so there is no guest column here.
type Bookmark struct {
	ID        int64     `db:"id" json:"id"`
	NewsID    int64     `db:"news_id" json:"newsId"`
	UserID    int64     `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ToggleRequest is the payload for flipping bookmark state.
type ToggleRequest struct {
	NewsID int64 `json:"newsId"`
}

// ListResponse is a page of the user's bookmarked articles, annotated like
// any other news listing, plus pagination metadata.
type ListResponse struct {
	Total       int64                     `json:"total"`
	TotalPages  int                       `json:"totalPages"`
	CurrentPage int                       `json:"currentPage"`
	Limit       int                       `json:"limit"`
	HasNext     bool                      `json:"hasNext"`
	HasPrev     bool                      `json:"hasPrev"`
	News        []newsmodels.NewsResponse `json:"news"`
}
