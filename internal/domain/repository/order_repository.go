package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows ListOrders. Nil fields are ignored.
type OrderFilter struct {
	CustomerID *uuid.UUID
	Status     *entity.OrderStatus
}

// OrderRepository defines order and order item persistence.
type OrderRepository interface {
	// CreateOrder persists the order and its items.
	CreateOrder(ctx context.Context, order *entity.Order) error
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns orders with items, newest first.
	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// FindOrdersByCustomer returns id, total and creation time of a customer's orders.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindOrdersByCustomers is the batched form of FindOrdersByCustomer.
	FindOrdersByCustomers(ctx context.Context, customerIDs []uuid.UUID) ([]*entity.Order, error)
	FindOrderIDsByCustomer(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	DeleteOrderItemsByOrders(ctx context.Context, orderIDs []uuid.UUID) (int64, error)
	DeleteOrdersByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}
