package bookmarks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/bookmarks/handlers"
	identitymw "github.com/newspulse/api/internal/middleware/identity"
	platformconfig "github.com/newspulse/api/internal/platform/config"
)

type Handlers struct {
	BookmarkHandler *handlers.BookmarkHandler
}

// RegisterRoutes wires bookmark endpoints. The identity middleware resolves
// the caller; the service layer rejects guests so the error carries the
// guest-specific code instead of a generic 401.
func RegisterRoutes(app *fiber.App, h *Handlers, cfg *platformconfig.Config) {
	viewer := identitymw.New(identitymw.Config{Secret: cfg.JWT.AccessSecret})

	group := app.Group("/api/app/bookmarks", viewer)
	group.Post("/toggle", h.BookmarkHandler.Toggle)
	group.Get("/", h.BookmarkHandler.List)
}
