package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	engerrors "github.com/newspulse/api/engagement/errors"
	engservices "github.com/newspulse/api/engagement/services"
	identitymw "github.com/newspulse/api/internal/middleware/identity"
	"github.com/newspulse/api/internal/utils"
	"github.com/newspulse/api/news/errors"
	"github.com/newspulse/api/news/models"
	"github.com/newspulse/api/news/services"
)

type NewsHandler struct {
	service    services.Service
	engagement engservices.Service
}

func NewNewsHandler(service services.Service, engagement engservices.Service) *NewsHandler {
	return &NewsHandler{service: service, engagement: engagement}
}

// List returns one page of annotated news.
// Endpoint: GET /api/app/news?page=&limit=&categoryId=&search=&type=
func (h *NewsHandler) List(c *fiber.Ctx) error {
	query := models.ListQuery{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		CategoryID: int64(c.QueryInt("categoryId", 0)),
		Search:     c.Query("search"),
		Type:       c.Query("type"),
	}

	resp, err := h.service.List(c.Context(), query, identitymw.FromCtx(c))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "News fetched successfully", resp)
}

// GetByID returns a single annotated article and records the caller's view.
// Endpoint: GET /api/app/news/:id
func (h *NewsHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errors.HandleValidationError(c, "id must be a positive integer")
	}

	resp, err := h.service.GetByID(c.Context(), int64(id), identitymw.FromCtx(c))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "News fetched successfully", resp)
}

type toggleLikeRequest struct {
	NewsID int64 `json:"newsId"`
}

// ToggleLike flips like state for the caller, guest or registered.
// Endpoint: POST /api/app/news/toggle-like
func (h *NewsHandler) ToggleLike(c *fiber.Ctx) error {
	var req toggleLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "invalid request body")
	}
	if req.NewsID <= 0 {
		return errors.HandleValidationError(c, "newsId is required")
	}

	liked, err := h.engagement.ToggleLike(c.Context(), req.NewsID, identitymw.FromCtx(c))
	if err != nil {
		return engerrors.HandleServiceError(c, err)
	}

	message := "News unliked"
	if liked {
		message = "News liked"
	}
	return c.Status(http.StatusOK).JSON(utils.Envelope{
		Success: true,
		Message: message,
		Data:    fiber.Map{"liked": liked},
	})
}
