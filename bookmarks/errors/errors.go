package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Bookmark service specific errors
var (
	ErrUnauthorized      = errors.New("no resolvable identity")
	ErrGuestForbidden    = errors.New("bookmarking requires a registered account")
	ErrNewsNotFound      = errors.New("news not found")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeGuestForbidden = "GUEST_FORBIDDEN"
	CodeNewsNotFound   = "NEWS_NOT_FOUND"
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

// HandleServiceError maps service errors onto HTTP responses. A guest trying
// to bookmark gets 401 so clients prompt for sign-in rather than showing a
// generic failure.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrGuestForbidden):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Code: CodeGuestForbidden, Message: "Bookmarking requires a registered account", Details: err.Error()})
	case errors.Is(err, ErrUnauthorized):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Code: CodeUnauthorized, Message: "Authentication required", Details: err.Error()})
	case errors.Is(err, ErrNewsNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeNewsNotFound, Message: "News not found", Details: err.Error()})
	case errors.Is(err, ErrInvalidRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Code: CodeDatabaseError, Message: "Database operation failed", Details: err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: message, Details: message})
}
