package repositories

import (
	"context"

	"bookstore/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create reserves stock for every item and inserts the order in one
	// transaction. ErrInsufficientStock aborts the whole order.
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
}
