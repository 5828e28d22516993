package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Category service specific errors
var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateName     = errors.New("category name already exists")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeDuplicateName    = "DUPLICATE_NAME"
	CodeInvalidRequest   = "INVALID_REQUEST"
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
	case errors.Is(err, ErrCategoryNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Code: CodeCategoryNotFound, Message: "Category not found", Details: err.Error()})
	case errors.Is(err, ErrDuplicateName):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{Code: CodeDuplicateName, Message: "Category name already exists", Details: err.Error()})
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
