package middleware

import (
	"log"

	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly rejects the request unless the authenticated user is an
// administrator. It must run after AuthRequired.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return services.ErrMissingToken
		}
		if !user.IsAdmin() {
			log.Printf("Admin access denied for user %s on %s %s", user.ID, c.Method(), c.Path())
			return services.ErrAdminRequired
		}
		return c.Next()
	}
}
