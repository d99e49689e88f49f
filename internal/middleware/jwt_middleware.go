package middleware

import (
	"strings"

	"bookstore/internal/models"
	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

const localsUserKey = "user"

// AuthRequired is a Fiber middleware that resolves the bearer token to a
// stored, non-banned user and stores it for subsequent handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return services.ErrMissingToken
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return &services.UnauthorizedError{Msg: "Authorization header format must be 'Bearer <token>'"}
		}

		user, err := authService.Authenticate(c.UserContext(), parts[1])
		if err != nil {
			return err
		}

		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil on routes
// that are not authenticated.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUserKey).(*models.User)
	return user
}
