package types

// HTTP header constants
const (
	HeaderAuthorization = "Authorization"
	HeaderGuestID       = "X-Guest-ID"
	HeaderContentType   = "Content-Type"
)

// Authentication constants
const (
	BearerPrefix = "Bearer "
)

// Account roles
const (
	UserRole  = "user"
	StaffRole = "staff"
	AdminRole = "admin"
)

// Fiber Locals keys
const (
	UserCtxName   = "user"
	ViewerCtxName = "viewer"
)

// UserContext carries the authenticated principal through a request.
type UserContext struct {
	UserID      int64
	Role        string
	DisplayName string
}
