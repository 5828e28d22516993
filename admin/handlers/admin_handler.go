package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/admin/errors"
	"github.com/newspulse/api/admin/models"
	"github.com/newspulse/api/admin/services"
	"github.com/newspulse/api/internal/types"
	"github.com/newspulse/api/internal/utils"
)

// AdminHandler serves staff management, user listing and the dashboard.
type AdminHandler struct {
	service services.Service
}

func NewAdminHandler(service services.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// CreateStaff adds a staff account.
// Endpoint: POST /api/admin/staff
func (h *AdminHandler) CreateStaff(c *fiber.Ctx) error {
	var req models.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.CreateStaff(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.Created(c, "Staff account created successfully", resp)
}

// ListStaff returns a page of staff accounts.
// Endpoint: GET /api/admin/staff
func (h *AdminHandler) ListStaff(c *fiber.Ctx) error {
	resp, err := h.service.ListStaff(c.Context(), c.QueryInt("page", 1), c.QueryInt("limit", 10), c.Query("search"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Staff fetched successfully", resp)
}

// UpdateStaff edits a staff account.
// Endpoint: PUT /api/admin/staff/:id
func (h *AdminHandler) UpdateStaff(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	var req models.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.UpdateStaff(c.Context(), int64(id), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Staff account updated successfully", resp)
}

// DeleteStaff removes a staff account.
// Endpoint: DELETE /api/admin/staff/:id
func (h *AdminHandler) DeleteStaff(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	caller, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleValidationError(c, "missing authenticated user")
	}

	if err := h.service.DeleteStaff(c.Context(), caller.UserID, int64(id)); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Staff account deleted successfully", nil)
}

// ListUsers returns a page of app-user accounts.
// Endpoint: GET /api/admin/users
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	resp, err := h.service.ListUsers(c.Context(), c.QueryInt("page", 1), c.QueryInt("limit", 10), c.Query("search"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Users fetched successfully", resp)
}

// Dashboard returns the aggregate counts.
// Endpoint: GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.service.Dashboard(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Dashboard fetched successfully", resp)
}
