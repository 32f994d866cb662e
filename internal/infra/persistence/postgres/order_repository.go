package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"
	"backoffice/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	q *query.Query
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		q: query.Use(db),
	}
}

// CreateOrder persists an order together with its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	ensureID(&order.ID)
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	orderM, itemMs := fromOrderDomain(order)

	err := repo.q.Transaction(func(tx *query.Query) error {
		if err := tx.OrderModel.WithContext(ctx).Create(orderM); err != nil {
			return err
		}

		return tx.OrderItemModel.WithContext(ctx).Create(itemMs...)
	})
	if err != nil {
		return translateWriteError(err, nil, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	orderM, err := repo.q.OrderModel.WithContext(ctx).
		Where(repo.q.OrderModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	orders, err := repo.withItems(ctx, []*model.OrderModel{orderM})
	if err != nil {
		return nil, err
	}

	return orders[0], nil
}

// ListOrders retrieves orders with their items, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	o := repo.q.OrderModel
	do := o.WithContext(ctx).Order(o.CreatedAt.Desc())
	if filter.CustomerID != nil {
		do = do.Where(o.CustomerID.Eq(*filter.CustomerID))
	}
	if filter.Status != nil {
		do = do.Where(o.Status.Eq(filter.Status.String()))
	}

	orderModels, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return repo.withItems(ctx, orderModels)
}

// withItems loads the lines of every order in one query.
func (repo *orderRepository) withItems(ctx context.Context, orderModels []*model.OrderModel) ([]*entity.Order, error) {
	if len(orderModels) == 0 {
		return []*entity.Order{}, nil
	}

	ids := make([]uuid.UUID, 0, len(orderModels))
	for _, m := range orderModels {
		ids = append(ids, m.ID)
	}

	oi := repo.q.OrderItemModel
	itemModels, err := oi.WithContext(ctx).Where(oi.OrderID.In(uuidValues(ids)...)).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, m := range orderModels {
		orders = append(orders, toOrderDomain(m, itemModels))
	}

	return orders, nil
}

// FindOrdersByCustomer retrieves the aggregation columns of a customer's orders.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	o := repo.q.OrderModel
	orderModels, err := o.WithContext(ctx).
		Select(o.ID, o.CustomerID, o.TotalAmount, o.CreatedAt).
		Where(o.CustomerID.Eq(customerID)).
		Order(o.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return toOrderSummaries(orderModels), nil
}

// FindOrdersByCustomers retrieves the aggregation columns of several customers' orders in one query.
func (repo *orderRepository) FindOrdersByCustomers(ctx context.Context, customerIDs []uuid.UUID) ([]*entity.Order, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}

	o := repo.q.OrderModel
	orderModels, err := o.WithContext(ctx).
		Select(o.ID, o.CustomerID, o.TotalAmount, o.CreatedAt).
		Where(o.CustomerID.In(uuidValues(customerIDs)...)).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customers")
	}

	return toOrderSummaries(orderModels), nil
}

// FindOrderIDsByCustomer retrieves the IDs of a customer's orders.
func (repo *orderRepository) FindOrderIDsByCustomer(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error) {
	o := repo.q.OrderModel
	var ids []uuid.UUID
	if err := o.WithContext(ctx).Where(o.CustomerID.Eq(customerID)).Pluck(o.ID, &ids); err != nil {
		return nil, errors.Wrap(err, "failed to find order IDs by customer")
	}

	return ids, nil
}

// UpdateOrderStatus changes the fulfilment status of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	o := repo.q.OrderModel
	result, err := o.WithContext(ctx).Where(o.ID.Eq(id)).Update(o.Status, status.String())
	if err != nil {
		return translateWriteError(err, nil, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteOrderItemsByOrders removes the items of the given orders.
func (repo *orderRepository) DeleteOrderItemsByOrders(ctx context.Context, orderIDs []uuid.UUID) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}

	result, err := repo.q.OrderItemModel.WithContext(ctx).
		Where(repo.q.OrderItemModel.OrderID.In(uuidValues(orderIDs)...)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete order items")
	}

	return result.RowsAffected, nil
}

// DeleteOrdersByCustomer removes every order of a customer.
func (repo *orderRepository) DeleteOrdersByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	result, err := repo.q.OrderModel.WithContext(ctx).
		Where(repo.q.OrderModel.CustomerID.Eq(customerID)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete orders by customer")
	}

	return result.RowsAffected, nil
}

// toOrderSummaries maps rows loaded without their items.
func toOrderSummaries(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, m := range orderModels {
		orders = append(orders, toOrderDomain(m, nil))
	}

	return orders
}
