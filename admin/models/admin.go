package models

import authmodels "github.com/newspulse/api/auth/models"

// CreateStaffRequest is the payload for creating a staff account.
type CreateStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateStaffRequest is the payload for editing a staff account. Nil fields
// keep their stored value.
type UpdateStaffRequest struct {
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
	Avatar *string `json:"avatar"`
}

// UserListResponse is a page of accounts plus pagination metadata.
type UserListResponse struct {
	Total       int64                     `json:"total"`
	TotalPages  int                       `json:"totalPages"`
	CurrentPage int                       `json:"currentPage"`
	Limit       int                       `json:"limit"`
	HasNext     bool                      `json:"hasNext"`
	HasPrev     bool                      `json:"hasPrev"`
	Users       []authmodels.UserResponse `json:"users"`
}

// DashboardResponse carries the aggregate counts on the admin home screen.
// Every number is recomputed from the store on each request.
type DashboardResponse struct {
	Users      int64 `json:"users"`
	News       int64 `json:"news"`
	Categories int64 `json:"categories"`
	Likes      int64 `json:"likes"`
	Views      int64 `json:"views"`
	Bookmarks  int64 `json:"bookmarks"`
}
