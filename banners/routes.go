package banners

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/banners/handlers"
	adminmw "github.com/newspulse/api/internal/middleware/admin"
	"github.com/newspulse/api/internal/middleware/authjwt"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	"github.com/newspulse/api/internal/types"
)

type Handlers struct {
	BannerHandler *handlers.BannerHandler
}

// RegisterRoutes wires the public banner list and the admin CRUD.
func RegisterRoutes(app *fiber.App, h *Handlers, cfg *platformconfig.Config) {
	app.Get("/api/app/banners", h.BannerHandler.ListActive)

	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.AccessSecret, UserCtxName: types.UserCtxName})
	adminGroup := app.Group("/api/admin/banners", adminAuth, adminmw.RequireRoles(types.AdminRole, types.StaffRole))
	adminGroup.Get("/", h.BannerHandler.ListAll)
	adminGroup.Post("/", h.BannerHandler.Create)
	adminGroup.Put("/:id", h.BannerHandler.Update)
	adminGroup.Delete("/:id", h.BannerHandler.Delete)
}
