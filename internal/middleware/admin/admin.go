package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newspulse/api/internal/types"
)

// RequireRoles creates middleware that allows only principals with one of the
// given roles. It must run after the authjwt middleware.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(types.UserCtxName).(types.UserContext)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Authentication required",
			})
		}
		if _, ok := allowed[user.Role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    "PERMISSION_DENIED",
				"message": "Access denied",
			})
		}
		return c.Next()
	}
}
