package handlers

import (
	"bookstore/internal/middleware"
	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the customer order routes. The router must
// already be scoped to /orders behind AuthRequired.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleGetOrders)
	router.Post("/", h.HandleCreateOrder)
	router.Get("/:id", h.HandleGetOrderByID)
}

// RegisterAdminRoutes registers the order routes reserved to administrators.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders retrieves the orders of the authenticated user.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return services.ErrMissingToken
	}

	orders, err := h.service.ListOrders(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.UserContext(), c.Params("id"), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"order": order})
}

// HandleCreateOrder places an order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return services.ErrMissingToken
	}

	var input services.CreateOrderInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	order, err := h.service.CreateOrder(c.UserContext(), user.ID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order": order,
		"msg":   "Order created",
	})
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var input services.UpdateOrderStatusInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	order, err := h.service.UpdateOrderStatus(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"order": order,
		"msg":   "Order status updated",
	})
}
