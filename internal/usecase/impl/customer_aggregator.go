package impl

import (
	"context"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

// customerAggregator implements the CustomerAggregator interface.
type customerAggregator struct {
	repos      repository.RepositoryFactory
	thresholds entity.ClassificationThresholds
}

// NewCustomerAggregator is the constructor for customerAggregator.
// VIP thresholds come from the admin config section when set.
func NewCustomerAggregator(repos repository.RepositoryFactory, cfg *config.Config) usecase.CustomerAggregator {
	thresholds := entity.DefaultClassificationThresholds()
	if cfg != nil && cfg.Admin != nil {
		if cfg.Admin.VIPOrderThreshold > 0 {
			thresholds.VIPOrderCount = cfg.Admin.VIPOrderThreshold
		}
		if cfg.Admin.VIPSpendThreshold > 0 {
			thresholds.VIPTotalSpent = cfg.Admin.VIPSpendThreshold
		}
	}

	return &customerAggregator{
		repos:      repos,
		thresholds: thresholds,
	}
}

// Aggregate fetches the customer's orders and newsletter flag with two independent lookups.
func (a *customerAggregator) Aggregate(ctx context.Context, customer *entity.Customer) (*entity.CustomerSummary, error) {
	if customer == nil {
		return nil, domainerrors.NewValidationError("cliente é obrigatório")
	}

	orders, err := a.repos.NewOrderRepository().FindOrdersByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch customer orders")
	}

	subscribed, err := a.repos.NewNewsletterRepository().ExistsByEmail(ctx, customer.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check newsletter subscription")
	}

	return entity.NewCustomerSummary(customer, entity.TotalsFromOrders(orders), subscribed, a.thresholds), nil
}

// AggregateMany folds one batched order query and one batched newsletter query.
func (a *customerAggregator) AggregateMany(ctx context.Context, customers []*entity.Customer) ([]*entity.CustomerSummary, error) {
	if len(customers) == 0 {
		return []*entity.CustomerSummary{}, nil
	}

	ids := make([]uuid.UUID, 0, len(customers))
	emails := make([]string, 0, len(customers))
	for _, c := range customers {
		if c == nil {
			return nil, domainerrors.NewValidationError("cliente é obrigatório")
		}
		ids = append(ids, c.ID)
		emails = append(emails, c.Email)
	}

	orders, err := a.repos.NewOrderRepository().FindOrdersByCustomers(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch orders")
	}
	ordersByCustomer := make(map[uuid.UUID][]*entity.Order, len(customers))
	for _, o := range orders {
		ordersByCustomer[o.CustomerID] = append(ordersByCustomer[o.CustomerID], o)
	}

	subscribedEmails, err := a.repos.NewNewsletterRepository().FindSubscribedEmails(ctx, emails)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch newsletter subscriptions")
	}
	subscribed := make(map[string]struct{}, len(subscribedEmails))
	for _, email := range subscribedEmails {
		subscribed[email] = struct{}{}
	}

	summaries := make([]*entity.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		_, isSubscribed := subscribed[c.Email]
		totals := entity.TotalsFromOrders(ordersByCustomer[c.ID])
		summaries = append(summaries, entity.NewCustomerSummary(c, totals, isSubscribed, a.thresholds))
	}

	return summaries, nil
}
