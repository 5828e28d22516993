package categories

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/categories/handlers"
	adminmw "github.com/newspulse/api/internal/middleware/admin"
	"github.com/newspulse/api/internal/middleware/authjwt"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	"github.com/newspulse/api/internal/types"
)

type Handlers struct {
	CategoryHandler *handlers.CategoryHandler
}

// RegisterRoutes wires the public category list and the admin CRUD.
func RegisterRoutes(app *fiber.App, h *Handlers, cfg *platformconfig.Config) {
	app.Get("/api/app/categories", h.CategoryHandler.List)

	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.AccessSecret, UserCtxName: types.UserCtxName})
	adminGroup := app.Group("/api/admin/categories", adminAuth, adminmw.RequireRoles(types.AdminRole, types.StaffRole))
	adminGroup.Get("/", h.CategoryHandler.List)
	adminGroup.Post("/", h.CategoryHandler.Create)
	adminGroup.Put("/:id", h.CategoryHandler.Update)
	adminGroup.Delete("/:id", h.CategoryHandler.Delete)
}
