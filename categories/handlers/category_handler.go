package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/categories/errors"
	"github.com/newspulse/api/categories/models"
	"github.com/newspulse/api/categories/services"
	"github.com/newspulse/api/internal/utils"
)

type CategoryHandler struct {
	service services.Service
}

func NewCategoryHandler(service services.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List returns all categories.
// Endpoint: GET /api/app/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Categories fetched successfully", categories)
}

// Create adds a category.
// Endpoint: POST /api/admin/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req models.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.Created(c, "Category created successfully", resp)
}

// Update renames a category.
// Endpoint: PUT /api/admin/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var req models.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.Update(c.Context(), int64(id), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Category updated successfully", resp)
}

// Delete removes a category; its articles stay, uncategorized.
// Endpoint: DELETE /api/admin/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	if err := h.service.Delete(c.Context(), int64(id)); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Category deleted successfully", nil)
}
