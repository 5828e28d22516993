package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Auth service specific errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidOTP         = errors.New("invalid or expired code")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrDatabaseOperation  = errors.New("database operation failed")
)

// Error codes
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInvalidOTP         = "INVALID_OTP"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps service errors onto HTTP responses. Login failures
// collapse to one message so callers cannot probe which emails exist.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Code: CodeInvalidCredentials, Message: "Invalid email or password"})
	case errors.Is(err, ErrInvalidToken):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Code: CodeInvalidToken, Message: "Invalid or expired token"})
	case errors.Is(err, ErrInvalidOTP):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Code: CodeInvalidOTP, Message: "Invalid or expired code"})
	case errors.Is(err, ErrDuplicateEmail):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{Code: CodeDuplicateEmail, Message: "Email already registered"})
	case errors.Is(err, ErrWeakPassword):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeWeakPassword, Message: "Password is too weak", Details: err.Error()})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeUserNotFound, Message: "User not found"})
	case errors.Is(err, ErrInvalidRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Code: CodeDatabaseError, Message: "Database operation failed"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: message, Details: message})
}
