package middleware

import (
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates a route group behind a valid identity token carried
// in the auth-token header. On success the resolved user id is stored in
// the request locals; on a missing or invalid token the request is
// rejected before any downstream handler runs.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("auth-token")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Please authenticate using valid token",
			})
		}

		userID, err := authService.VerifyToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Please authenticate using valid token",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
