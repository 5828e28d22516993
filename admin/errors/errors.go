package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Admin service specific errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNotStaff          = errors.New("account is not a staff account")
	ErrSelfDelete        = errors.New("cannot delete your own account")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeNotStaff       = "NOT_STAFF"
	CodeSelfDelete     = "SELF_DELETE"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeDatabaseError  = "DATABASE_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps service errors onto HTTP responses.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeUserNotFound, Message: "User not found"})
	case errors.Is(err, ErrNotStaff):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeNotStaff, Message: "Account is not a staff account"})
	case errors.Is(err, ErrSelfDelete):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeSelfDelete, Message: "Cannot delete your own account"})
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
