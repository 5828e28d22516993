package profile

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/internal/middleware/authjwt"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	"github.com/newspulse/api/internal/types"
	"github.com/newspulse/api/profile/handlers"
)

type Handlers struct {
	ProfileHandler *handlers.ProfileHandler
}

// RegisterRoutes wires the own-profile endpoints.
func RegisterRoutes(app *fiber.App, h *Handlers, cfg *platformconfig.Config) {
	requireAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.AccessSecret, UserCtxName: types.UserCtxName})

	group := app.Group("/api/app/user", requireAuth)
	group.Get("/profile", h.ProfileHandler.Get)
	group.Put("/profile", h.ProfileHandler.Update)
}
