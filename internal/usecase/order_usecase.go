package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
)

// OrderUsecase defines the order panel use cases.
type OrderUsecase interface {
	// ListOrders returns orders with their items, newest first.
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error)

	// UpdateOrderStatus validates the raw status and stores it.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
}
