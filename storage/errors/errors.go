package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Storage service specific errors
var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrStorageOperation = errors.New("storage operation failed")
)

// Error codes
const (
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeUnsupportedMedia = "UNSUPPORTED_MEDIA"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeStorageError     = "STORAGE_ERROR"
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
	case errors.Is(err, ErrFileTooLarge):
		return c.Status(http.StatusRequestEntityTooLarge).JSON(ErrorResponse{Code: CodeFileTooLarge, Message: err.Error()})
	case errors.Is(err, ErrUnsupportedMedia):
		return c.Status(http.StatusUnsupportedMediaType).JSON(ErrorResponse{Code: CodeUnsupportedMedia, Message: err.Error()})
	case errors.Is(err, ErrInvalidRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrStorageOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Code: CodeStorageError, Message: "Storage operation failed"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: message, Details: message})
}
