package models

import (
	"time"

	"github.com/newspulse/api/internal/utils"
)

// Sort modes for news listing.
const (
	SortRecent   = ""
	SortTrending = "trending"
	SortTopmost  = "topmost"
)

// TrendingWindow restricts trending results to recently created articles.
const TrendingWindow = 7 * 24 * time.Hour

// News is a single article row. An article carries an image or a video,
// never both.
type News struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	VideoURL    *string   `db:"video_url" json:"videoUrl"`
	CategoryID  *int64    `db:"category_id" json:"categoryId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// NewsResponse is an article as returned to clients, annotated with the
// caller's engagement state.
type NewsResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ImageURL     *string `json:"imageUrl"`
	VideoURL     *string `json:"videoUrl"`
	CategoryID   *int64  `json:"categoryId"`
	IsLiked      bool    `json:"is_liked"`
	IsBookmarked bool    `json:"is_bookmarked"`
	LikesCount   int64   `json:"likes_count"`
	ViewsCount   int64   `json:"views_count"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToResponse converts a row into the client shape without annotations.
func (n *News) ToResponse() NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		ImageURL:    n.ImageURL,
		VideoURL:    n.VideoURL,
		CategoryID:  n.CategoryID,
		CreatedAt:   utils.FormatDisplayDate(n.CreatedAt),
		UpdatedAt:   utils.FormatDisplayDate(n.UpdatedAt),
	}
}

// ListQuery carries the filter, sort and pagination inputs of a listing call.
type ListQuery struct {
	Page       int
	Limit      int
	CategoryID int64
	Search     string
	Type       string
}

// ListResponse is a page of annotated articles plus pagination metadata.
type ListResponse struct {
	Total       int64          `json:"total"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Limit       int            `json:"limit"`
	HasNext     bool           `json:"hasNext"`
	HasPrev     bool           `json:"hasPrev"`
	NextPage    *int           `json:"nextPage"`
	PrevPage    *int           `json:"prevPage"`
	News        []NewsResponse `json:"news"`
}

// CreateNewsRequest is the admin payload for creating an article.
type CreateNewsRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	VideoURL    *string `json:"videoUrl"`
	CategoryID  *int64  `json:"categoryId"`
}

// UpdateNewsRequest is the admin payload for editing an article. Nil fields
// keep their stored value.
type UpdateNewsRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	VideoURL    *string `json:"videoUrl"`
	CategoryID  *int64  `json:"categoryId"`
}
