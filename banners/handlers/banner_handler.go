package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/banners/errors"
	"github.com/newspulse/api/banners/models"
	"github.com/newspulse/api/banners/services"
	"github.com/newspulse/api/internal/utils"
)

type BannerHandler struct {
	service services.Service
}

func NewBannerHandler(service services.Service) *BannerHandler {
	return &BannerHandler{service: service}
}

// ListActive returns active banners for the app home screen.
// Endpoint: GET /api/app/banners
func (h *BannerHandler) ListActive(c *fiber.Ctx) error {
	banners, err := h.service.ListActive(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Banners fetched successfully", banners)
}

// ListAll returns every banner for the admin panel.
// Endpoint: GET /api/admin/banners
func (h *BannerHandler) ListAll(c *fiber.Ctx) error {
	banners, err := h.service.ListAll(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Banners fetched successfully", banners)
}

// Create adds a banner.
// Endpoint: POST /api/admin/banners
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var req models.CreateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	banner, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.Created(c, "Banner created successfully", banner)
}

// Update edits a banner.
// Endpoint: PUT /api/admin/banners/:id
func (h *BannerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var req models.UpdateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	banner, err := h.service.Update(c.Context(), int64(id), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Banner updated successfully", banner)
}

// Delete removes a banner.
// Endpoint: DELETE /api/admin/banners/:id
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	if err := h.service.Delete(c.Context(), int64(id)); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Banner deleted successfully", nil)
}
