package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/models"
)

// RequireRole checks if the authenticated user has one of the given roles.
// Protected() must run first to put the role into locals.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		for _, r := range roles {
			if models.UserRole(role) == r {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have the required role to perform this action",
		})
	}
}
