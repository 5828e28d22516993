package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/internal/types"
	"github.com/newspulse/api/internal/utils"
	"github.com/newspulse/api/profile/errors"
	"github.com/newspulse/api/profile/models"
	"github.com/newspulse/api/profile/services"
)

type ProfileHandler struct {
	service services.Service
}

func NewProfileHandler(service services.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func currentUser(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok
}

// Get returns the caller's profile.
// Endpoint: GET /api/app/user/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errors.HandleValidationError(c, "invalid user context")
	}

	resp, err := h.service.Get(c.Context(), user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Profile fetched successfully", resp)
}

// Update edits the caller's profile.
// Endpoint: PUT /api/app/user/profile
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errors.HandleValidationError(c, "invalid user context")
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}

	resp, err := h.service.Update(c.Context(), user.UserID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Profile updated successfully", resp)
}
