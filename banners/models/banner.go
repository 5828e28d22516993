package models

import "time"

// Banner is a promotional image on the app home screen. It can deep-link to
// an article or to an external URL, or to nothing at all.
type Banner struct {
	ID          int64     `db:"id" json:"id"`
	BannerImage string    `db:"banner_image" json:"bannerImage"`
	NewsID      *int64    `db:"news_id" json:"newsId"`
	URL         *string   `db:"url" json:"url"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	SortOrder   int       `db:"sort_order" json:"sortOrder"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateBannerRequest is the admin payload for creating a banner.
type CreateBannerRequest struct {
	BannerImage string  `json:"bannerImage"`
	NewsID      *int64  `json:"newsId"`
	URL         *string `json:"url"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   int     `json:"sortOrder"`
}

// UpdateBannerRequest is the admin payload for editing a banner. Nil fields
// keep their stored value.
type UpdateBannerRequest struct {
	BannerImage *string `json:"bannerImage"`
	NewsID      *int64  `json:"newsId"`
	URL         *string `json:"url"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`
}
