package oauth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/auth/errors"
	"github.com/newspulse/api/internal/utils"
)

const stateCookie = "oauth_state"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login redirects to the Google consent screen.
// Endpoint: GET /api/auth/oauth2/google
func (h *Handler) Login(c *fiber.Ctx) error {
	state, err := GenerateState()
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect(h.service.AuthURL(state), fiber.StatusTemporaryRedirect)
}

// Callback completes the Google sign-in.
// Endpoint: GET /api/auth/oauth2/google/callback
func (h *Handler) Callback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookie) {
		return errors.HandleValidationError(c, "invalid oauth state")
	}
	c.ClearCookie(stateCookie)

	code := c.Query("code")
	if code == "" {
		return errors.HandleValidationError(c, "code is required")
	}

	resp, err := h.service.HandleCallback(c.Context(), code)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return utils.OK(c, "Signed in successfully", resp)
}
