package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/internal/utils"
	"github.com/newspulse/api/storage/errors"
	"github.com/newspulse/api/storage/services"
)

// StorageHandler serves the admin media upload surface.
type StorageHandler struct {
	service services.Service
}

func NewStorageHandler(service services.Service) *StorageHandler {
	return &StorageHandler{service: service}
}

// Upload stores a media file and returns its public URL.
// Endpoint: POST /api/admin/uploads
func (h *StorageHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return errors.HandleValidationError(c, "a \"file\" form field is required")
	}

	file, err := header.Open()
	if err != nil {
		return errors.HandleValidationError(c, "could not read the uploaded file")
	}
	defer file.Close()

	resp, err := h.service.Upload(c.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.Created(c, "File uploaded successfully", resp)
}

// Delete removes an uploaded object by key.
// Endpoint: DELETE /api/admin/uploads
func (h *StorageHandler) Delete(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return errors.HandleValidationError(c, "a \"key\" query parameter is required")
	}

	if err := h.service.Delete(c.Context(), key); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "File deleted successfully", nil)
}
