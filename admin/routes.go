package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/admin/handlers"
	adminmw "github.com/newspulse/api/internal/middleware/admin"
	"github.com/newspulse/api/internal/middleware/authjwt"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	"github.com/newspulse/api/internal/types"
)

type Handlers struct {
	AdminHandler *handlers.AdminHandler
}

// RegisterRoutes wires the admin panel endpoints. Staff management is
// admin-only; the dashboard and user listing are open to staff as well.
func RegisterRoutes(app *fiber.App, h *Handlers, cfg *platformconfig.Config) {
	requireAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.AccessSecret, UserCtxName: types.UserCtxName})

	staffGroup := app.Group("/api/admin/staff", requireAuth, adminmw.RequireRoles(types.AdminRole))
	staffGroup.Get("/", h.AdminHandler.ListStaff)
	staffGroup.Post("/", h.AdminHandler.CreateStaff)
	staffGroup.Put("/:id", h.AdminHandler.UpdateStaff)
	staffGroup.Delete("/:id", h.AdminHandler.DeleteStaff)

	panelGroup := app.Group("/api/admin", requireAuth, adminmw.RequireRoles(types.AdminRole, types.StaffRole))
	panelGroup.Get("/users", h.AdminHandler.ListUsers)
	panelGroup.Get("/dashboard", h.AdminHandler.Dashboard)
}
