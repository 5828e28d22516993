package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/bookmarks/errors"
	"github.com/newspulse/api/bookmarks/models"
	"github.com/newspulse/api/bookmarks/services"
	identitymw "github.com/newspulse/api/internal/middleware/identity"
	"github.com/newspulse/api/internal/utils"
)

type BookmarkHandler struct {
	service services.Service
}

func NewBookmarkHandler(service services.Service) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// Toggle flips bookmark state for the authenticated user.
// Endpoint: POST /api/app/bookmarks/toggle
func (h *BookmarkHandler) Toggle(c *fiber.Ctx) error {
	var req models.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}
	if req.NewsID <= 0 {
		return errors.HandleValidationError(c, "newsId is required")
	}

	bookmarked, err := h.service.Toggle(c.Context(), req.NewsID, identitymw.FromCtx(c))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	message := "Bookmark removed"
	if bookmarked {
		message = "News bookmarked"
	}
	return c.Status(http.StatusOK).JSON(utils.Envelope{
		Success: true,
		Message: message,
		Data:    fiber.Map{"is_bookmarked": bookmarked},
	})
}

// List returns the user's bookmarked articles.
// Endpoint: GET /api/app/bookmarks?page=&limit=
func (h *BookmarkHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	resp, err := h.service.List(c.Context(), identitymw.FromCtx(c), page, limit)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Bookmarks fetched successfully", resp)
}
