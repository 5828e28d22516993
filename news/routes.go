package news

import (
	"github.com/gofiber/fiber/v2"

	adminmw "github.com/newspulse/api/internal/middleware/admin"
	"github.com/newspulse/api/internal/middleware/authjwt"
	identitymw "github.com/newspulse/api/internal/middleware/identity"
	platformconfig "github.com/newspulse/api/internal/platform/config"
	"github.com/newspulse/api/internal/types"
	"github.com/newspulse/api/news/handlers"
)

type Handlers struct {
	NewsHandler      *handlers.NewsHandler
	AdminNewsHandler *handlers.AdminNewsHandler
}

// RegisterRoutes wires the public news endpoints and the admin CRUD.
func RegisterRoutes(app *fiber.App, h *Handlers, cfg *platformconfig.Config) {
	viewer := identitymw.New(identitymw.Config{Secret: cfg.JWT.AccessSecret})

	appGroup := app.Group("/api/app/news", viewer)
	appGroup.Get("/", h.NewsHandler.List)
	appGroup.Post("/toggle-like", h.NewsHandler.ToggleLike)
	appGroup.Get("/:id", h.NewsHandler.GetByID)

	adminAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.AccessSecret, UserCtxName: types.UserCtxName})
	adminGroup := app.Group("/api/admin/news", adminAuth, adminmw.RequireRoles(types.AdminRole, types.StaffRole))
	adminGroup.Get("/", h.AdminNewsHandler.List)
	adminGroup.Post("/", h.AdminNewsHandler.Create)
	adminGroup.Put("/:id", h.AdminNewsHandler.Update)
	adminGroup.Delete("/:id", h.AdminNewsHandler.Delete)
}
