package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/internal/identity"
	"github.com/newspulse/api/internal/utils"
	"github.com/newspulse/api/news/errors"
	"github.com/newspulse/api/news/models"
	"github.com/newspulse/api/news/services"
)

// AdminNewsHandler serves the editorial CRUD surface.
type AdminNewsHandler struct {
	service services.Service
}

func NewAdminNewsHandler(service services.Service) *AdminNewsHandler {
	return &AdminNewsHandler{service: service}
}

// List returns one page of news for the admin panel. Admin listings reuse the
// public query surface; annotations come back zeroed since the panel does not
// act as a viewer.
// Endpoint: GET /api/admin/news
func (h *AdminNewsHandler) List(c *fiber.Ctx) error {
	query := models.ListQuery{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		CategoryID: int64(c.QueryInt("categoryId", 0)),
		Search:     c.Query("search"),
	}

	resp, err := h.service.List(c.Context(), query, identity.Identity{})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "News fetched successfully", resp)
}

// Create adds an article.
// Endpoint: POST /api/admin/news
func (h *AdminNewsHandler) Create(c *fiber.Ctx) error {
	var req models.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.Created(c, "News created successfully", resp)
}

// Update edits an article.
// Endpoint: PUT /api/admin/news/:id
func (h *AdminNewsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var req models.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.Update(c.Context(), int64(id), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "News updated successfully", resp)
}

// Delete removes an article; its engagement rows cascade away with it.
// Endpoint: DELETE /api/admin/news/:id
func (h *AdminNewsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	if err := h.service.Delete(c.Context(), int64(id)); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "News deleted successfully", nil)
}
