package models

import (
	"time"

	"github.com/newspulse/api/internal/utils"
)

// User is an account row. App users, staff and admins share the table and
// are distinguished by role.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  []byte    `db:"password" json:"-"`
	Mobile    *string   `db:"mobile" json:"mobile"`
	Avatar    *string   `db:"avatar" json:"avatar"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// UserResponse is an account as returned to clients, without credentials.
type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Mobile    *string `json:"mobile"`
	Avatar    *string `json:"avatar"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"createdAt"`
}

// ToResponse converts a row into the client shape.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Avatar:    u.Avatar,
		Role:      u.Role,
		CreatedAt: utils.FormatDisplayDate(u.CreatedAt),
	}
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Mobile   *string `json:"mobile"`
}

// LoginRequest is the payload for email/password sign-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair carries both tokens with their expiry timestamps so clients can
// refresh proactively.
type TokenPair struct {
	AccessToken      string `json:"accessToken"`
	AccessExpiresAt  int64  `json:"accessExpiresAt"`
	RefreshToken     string `json:"refreshToken"`
	RefreshExpiresAt int64  `json:"refreshExpiresAt"`
}

// AuthResponse is the sign-in result: the account plus a token pair.
type AuthResponse struct {
	User   UserResponse `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// RefreshRequest is the payload for exchanging a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ForgotPasswordRequest starts the OTP reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the OTP reset flow.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// UserFilter represents filtering criteria for listing accounts.
type UserFilter struct {
	Role   string
	Search string
}
