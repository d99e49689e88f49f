package handlers

import (
	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminUserHandler handles the administrative user endpoints. Its routes
// must be mounted behind the admin gate.
type AdminUserHandler struct {
	service *services.UserService
}

// NewAdminUserHandler creates a new AdminUserHandler.
func NewAdminUserHandler(service *services.UserService) *AdminUserHandler {
	return &AdminUserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes under /users.
func (h *AdminUserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Put("/:id/ban", h.HandleUpdateBanState)
}

// HandleListUsers lists every user.
func (h *AdminUserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": users})
}

// HandleUpdateUser updates the profile, role or ban flag of a user.
func (h *AdminUserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"user": user,
		"msg":  "User updated",
	})
}

// HandleUpdateBanState updates the ban flag of a user.
func (h *AdminUserHandler) HandleUpdateBanState(c *fiber.Ctx) error {
	var input services.UpdateBanStateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.service.UpdateBanState(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"user": user,
		"msg":  "User state updated",
	})
}
