// Package identity provides the middleware that resolves the acting identity
// for engagement endpoints: a registered user when a valid bearer token is
// present, otherwise a guest when the X-Guest-ID header carries a token,
// otherwise the zero identity. It never rejects a request; endpoints that
// require an identity check for the zero value themselves.
package identity

import (
	"github.com/gofiber/fiber/v2"

	id "github.com/newspulse/api/internal/identity"
	"github.com/newspulse/api/internal/middleware/authjwt"
	"github.com/newspulse/api/internal/types"
)

// Config defines the config for the identity middleware.
type Config struct {
	// Secret is the HS256 signing secret for access tokens.
	Secret string
}

// New creates middleware that stores the resolved identity in Locals under
// types.ViewerCtxName. A bearer token wins over the guest header when both are
// present; an invalid bearer token downgrades to guest rather than failing,
// matching the optional-auth behavior of the mobile endpoints.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, err := authjwt.ParseBearer(c, cfg.Secret); err == nil {
			c.Locals(types.UserCtxName, *user)
			c.Locals(types.ViewerCtxName, id.Registered(user.UserID))
			return c.Next()
		}

		c.Locals(types.ViewerCtxName, id.Guest(c.Get(types.HeaderGuestID)))
		return c.Next()
	}
}

// FromCtx returns the identity resolved by the middleware, or the zero
// identity when the middleware did not run.
func FromCtx(c *fiber.Ctx) id.Identity {
	if v, ok := c.Locals(types.ViewerCtxName).(id.Identity); ok {
		return v
	}
	return id.Identity{}
}
