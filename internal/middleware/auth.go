package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/cleandrop/internal/config"
	"github.com/example/cleandrop/internal/models"
	"github.com/example/cleandrop/internal/session"
	"github.com/example/cleandrop/internal/utils"
)

const userContextKey = "currentUser"

// AuthMiddleware validates the bearer token and requires it to belong to the
// session's current user, so a logout invalidates every issued token.
func AuthMiddleware(cfg *config.Config, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		user, ok := sessions.CurrentUser()
		if !ok || user.ID != claims.UserID {
			return fiber.NewError(fiber.StatusUnauthorized, "session expired")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// AdminOnly rejects authenticated users without the admin role. It must run
// after AuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetCurrentUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if !user.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// GetCurrentUser extracts the authenticated user from context.
func GetCurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(userContextKey).(models.User)
	return user, ok
}
