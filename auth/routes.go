package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/auth/handlers"
	"github.com/newspulse/api/auth/oauth"
	"github.com/newspulse/api/internal/middleware/authjwt"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	"github.com/newspulse/api/internal/types"
)

type Handlers struct {
	AuthHandler  *handlers.AuthHandler
	OAuthHandler *oauth.Handler
}

// RegisterRoutes wires authentication endpoints. The admin panel signs in
// through the same login; role separation happens on the admin routes.
func RegisterRoutes(app *fiber.App, h *Handlers, cfg *platformconfig.Config) {
	group := app.Group("/api/auth")
	group.Post("/register", h.AuthHandler.Register)
	group.Post("/login", h.AuthHandler.Login)
	group.Post("/refresh", h.AuthHandler.Refresh)
	group.Post("/forgot-password", h.AuthHandler.ForgotPassword)
	group.Post("/reset-password", h.AuthHandler.ResetPassword)

	requireAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.AccessSecret, UserCtxName: types.UserCtxName})
	group.Post("/logout", requireAuth, h.AuthHandler.Logout)

	if h.OAuthHandler != nil {
		group.Get("/oauth2/google", h.OAuthHandler.Login)
		group.Get("/oauth2/google/callback", h.OAuthHandler.Callback)
	}
}
