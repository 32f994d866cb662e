package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	repos    repository.RepositoryFactory
	notifier *changeNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Repos     repository.RepositoryFactory
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		repos:    params.Repos,
		notifier: newChangeNotifier(params.Publisher, params.Logger),
		logger:   params.Logger,
		now:      time.Now,
	}
}

// ListOrders returns the filtered orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domainerrors.NewValidationError("estado de encomenda inválido: " + filter.Status.String())
	}

	orders, err := srv.repos.NewOrderRepository().ListOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order to any known status.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	next, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.NewValidationError("estado de encomenda inválido: " + status)
	}

	orderRepo := srv.repos.NewOrderRepository()
	if err := orderRepo.UpdateOrderStatus(ctx, id, next); err != nil {
		return nil, mapNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order status")
	}

	order, err := orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find order")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Order status updated",
		slog.String("id", id.String()),
		slog.String("status", next.String()),
	)
	srv.notifier.notify(ctx, tableOrders, service.ChangeActionUpdated, id.String())

	return order, nil
}
