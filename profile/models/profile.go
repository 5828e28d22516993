package models

// UpdateProfileRequest is the payload for editing one's own profile. Nil
// fields keep their stored value.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
	Avatar *string `json:"avatar"`
}
