package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// News service specific errors
var (
	ErrNewsNotFound      = errors.New("news not found")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidMedium     = errors.New("news requires exactly one of image or video")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrUnauthorized      = errors.New("no resolvable identity")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeNewsNotFound     = "NEWS_NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidMedium    = "INVALID_MEDIUM"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
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
	case errors.Is(err, ErrUnauthorized):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Code: CodeUnauthorized, Message: "Missing user or guest identity", Details: err.Error()})
	case errors.Is(err, ErrNewsNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeNewsNotFound, Message: "News not found", Details: err.Error()})
	case errors.Is(err, ErrCategoryNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeCategoryNotFound, Message: "Category not found", Details: err.Error()})
	case errors.Is(err, ErrInvalidMedium):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidMedium, Message: err.Error(), Details: err.Error()})
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
