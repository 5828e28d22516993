package storage

import (
	"github.com/gofiber/fiber/v2"

	adminmw "github.com/newspulse/api/internal/middleware/admin"
	"github.com/newspulse/api/internal/middleware/authjwt"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	"github.com/newspulse/api/internal/types"
	"github.com/newspulse/api/storage/handlers"
)

type Handlers struct {
	StorageHandler *handlers.StorageHandler
}

// RegisterRoutes wires the admin media upload endpoints.
func RegisterRoutes(app *fiber.App, h *Handlers, cfg *platformconfig.Config) {
	requireAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.AccessSecret, UserCtxName: types.UserCtxName})

	group := app.Group("/api/admin/uploads", requireAuth, adminmw.RequireRoles(types.AdminRole, types.StaffRole))
	group.Post("/", h.StorageHandler.Upload)
	group.Delete("/", h.StorageHandler.Delete)
}
