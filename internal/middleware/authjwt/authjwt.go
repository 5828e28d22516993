package authjwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/newspulse/api/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// Secret is the HS256 signing secret for access tokens.
	Secret string
	// UserCtxName is the Locals key the UserContext is stored under.
	UserCtxName string
}

// New creates middleware that requires a valid bearer access token. The
// decoded principal is stored in Locals for downstream handlers.
func New(cfg Config) fiber.Handler {
	userCtxName := cfg.UserCtxName
	if userCtxName == "" {
		userCtxName = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		user, err := ParseBearer(c, cfg.Secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing or invalid access token",
			})
		}

		c.Locals(userCtxName, *user)
		return c.Next()
	}
}

// ParseBearer extracts and validates the bearer token on the request,
// returning the embedded principal. Used directly by the identity middleware
// where a missing token is not an error.
func ParseBearer(c *fiber.Ctx, secret string) (*types.UserContext, error) {
	authHeader := c.Get(types.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, types.BearerPrefix) {
		return nil, jwt.ErrTokenMalformed
	}
	tokenString := strings.TrimPrefix(authHeader, types.BearerPrefix)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Enforce the expected signing algorithm.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return nil, jwt.ErrTokenInvalidClaims
	}
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)

	return &types.UserContext{
		UserID:      int64(id),
		Role:        role,
		DisplayName: name,
	}, nil
}
