package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// OrderItemInput is one requested book line.
type OrderItemInput struct {
	BookID   string `json:"bookId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput is the body of an order placement.
type CreateOrderInput struct {
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusInput is the body of an order status change.
type UpdateOrderStatusInput struct {
	Status models.OrderStatus `json:"status"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	bookRepo  repositories.BookRepository
	events    Publisher
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, bookRepo repositories.BookRepository, events Publisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		events:    events,
	}
}

// CreateOrder prices each item at the current book price, reserves stock
// and stores the order as pending.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, in CreateOrderInput) (*models.Order, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var total float64
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		book, err := s.bookRepo.GetByID(ctx, item.BookID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, &NotFoundError{Msg: fmt.Sprintf("Book %s not found", item.BookID)}
			}
			return nil, err
		}
		if book.Stock < item.Quantity {
			return nil, ErrInsufficientStock
		}
		items = append(items, models.OrderItem{
			BookID:    book.ID,
			Quantity:  item.Quantity,
			UnitPrice: book.Price,
		})
		total += book.Price * float64(item.Quantity)
	}

	order := &models.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      models.OrderPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Stock can run out between the check above and the reservation.
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		return nil, err
	}

	log.Printf("Order %s created for user %s (%d items, total %.2f)", order.ID, userID, len(items), total)
	publishEvent(ctx, s.events, EventOrderCreated, map[string]interface{}{
		"orderId": order.ID,
		"userId":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
		"items":   order.Items,
	})
	return order, nil
}

// ListOrders returns the orders placed by userID.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetOrder retrieves an order visible to requester: their own orders, or
// any order for an administrator.
func (s *OrderService) GetOrder(ctx context.Context, id string, requester *models.User) (*models.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if requester == nil || (order.UserID != requester.ID && !requester.IsAdmin()) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus moves an order to a new status.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, in UpdateOrderStatusInput) (*models.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	if !in.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, in.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.events, EventOrderStatusUpdate, map[string]interface{}{
		"orderId": order.ID,
		"status":  order.Status,
	})
	return order, nil
}
