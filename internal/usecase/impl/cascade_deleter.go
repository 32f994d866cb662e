// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	"backoffice/config"
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

const defaultMaxBulkDelete = 100

// deleteStep is one statement of a cascade.
type deleteStep struct {
	table string
	run   func(ctx context.Context) (int64, error)
}

// cascadingDeleter implements the CascadingDeleter interface.
type cascadingDeleter struct {
	txManager     repository.TransactionManager
	notifier      *changeNotifier
	maxBulkDelete int
	logger        *slog.Logger
}

// CascadingDeleterParams holds dependencies for the cascading deleter, injected by Fx.
type CascadingDeleterParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCascadingDeleter is the constructor for cascadingDeleter.
func NewCascadingDeleter(params CascadingDeleterParams) usecase.CascadingDeleter {
	maxBulkDelete := defaultMaxBulkDelete
	if params.Config != nil && params.Config.Admin != nil && params.Config.Admin.MaxBulkDelete > 0 {
		maxBulkDelete = params.Config.Admin.MaxBulkDelete
	}

	return &cascadingDeleter{
		txManager:     params.TxManager,
		notifier:      newChangeNotifier(params.Publisher, params.Logger),
		maxBulkDelete: maxBulkDelete,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (d *cascadingDeleter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Delete removes the root and its dependents in one transaction. Nothing is deleted when any step fails.
func (d *cascadingDeleter) Delete(ctx context.Context, kind entity.RootKind, id uuid.UUID) (*entity.DeleteReport, error) {
	if !kind.IsValid() {
		return nil, domainerrors.NewValidationError("tipo de registo desconhecido: " + kind.String())
	}
	if id == uuid.Nil {
		return nil, domainerrors.NewValidationError("id é obrigatório")
	}

	d.log(ctx).Debug("Starting cascading delete", slog.String("kind", kind.String()), slog.String("id", id.String()))

	var report *entity.DeleteReport
	err := d.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		report, err = d.cascade(ctx, repoFactory, kind, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	d.logReport(ctx, report)
	d.notifier.notify(ctx, rootTable(kind), service.ChangeActionDeleted, id.String())

	return report, nil
}

// DeleteCustomers removes a selection of customers according to mode.
func (d *cascadingDeleter) DeleteCustomers(ctx context.Context, ids []uuid.UUID, mode entity.BulkDeleteMode) (*entity.BulkDeleteResult, error) {
	if !mode.IsValid() {
		return nil, domainerrors.NewValidationError("modo de eliminação inválido: " + string(mode))
	}

	ids = uniqueIDs(ids)
	switch {
	case len(ids) == 0:
		return nil, domainerrors.NewValidationError("nenhum cliente selecionado")
	case len(ids) > d.maxBulkDelete:
		return nil, domainerrors.NewValidationError("no máximo " + strconv.Itoa(d.maxBulkDelete) + " clientes por pedido")
	}

	var (
		result *entity.BulkDeleteResult
		err    error
	)
	if mode == entity.BulkDeleteAllOrNothing {
		result, err = d.deleteCustomersAtomically(ctx, ids)
	} else {
		result = d.deleteCustomersOneByOne(ctx, ids)
	}
	if err != nil {
		return nil, err
	}

	d.log(ctx).Info("Bulk customer delete finished",
		slog.String("mode", string(mode)),
		slog.Int("succeeded", len(result.Succeeded)),
		slog.Int("failed", len(result.Failed)),
	)
	if len(result.Succeeded) > 0 {
		d.notifier.notify(ctx, tableCustomers, service.ChangeActionDeleted, uuidStrings(result.Succeeded...)...)
	}

	return result, nil
}

func (d *cascadingDeleter) deleteCustomersAtomically(ctx context.Context, ids []uuid.UUID) (*entity.BulkDeleteResult, error) {
	err := d.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		for _, id := range ids {
			if _, err := d.cascade(ctx, repoFactory, entity.RootKindCustomer, id); err != nil {
				return errors.WithMessagef(err, "customer %s", id)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entity.BulkDeleteResult{
		Mode:      entity.BulkDeleteAllOrNothing,
		Succeeded: ids,
		Failed:    []entity.BulkDeleteFailure{},
	}, nil
}

func (d *cascadingDeleter) deleteCustomersOneByOne(ctx context.Context, ids []uuid.UUID) *entity.BulkDeleteResult {
	result := &entity.BulkDeleteResult{
		Mode:      entity.BulkDeleteBestEffort,
		Succeeded: make([]uuid.UUID, 0, len(ids)),
		Failed:    []entity.BulkDeleteFailure{},
	}

	for _, id := range ids {
		err := d.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			_, err := d.cascade(ctx, repoFactory, entity.RootKindCustomer, id)

			return err
		})
		if err != nil {
			appErr := domainerrors.FromError(err)
			reason := appErr.Message()
			if appErr.Details() != "" {
				reason += ": " + appErr.Details()
			}
			result.Failed = append(result.Failed, entity.BulkDeleteFailure{ID: id, Reason: reason})

			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result
}

// cascade runs the steps of kind against the given factory, which is bound to the caller's transaction.
func (d *cascadingDeleter) cascade(ctx context.Context, repoFactory repository.RepositoryFactory, kind entity.RootKind, id uuid.UUID) (*entity.DeleteReport, error) {
	var (
		steps []deleteStep
		err   error
	)
	switch kind {
	case entity.RootKindCategory:
		steps, err = categorySteps(ctx, repoFactory, id)
	case entity.RootKindSubcategory:
		steps, err = subcategorySteps(ctx, repoFactory, id)
	case entity.RootKindCustomer:
		steps, err = customerSteps(ctx, repoFactory, id)
	}
	if err != nil {
		return nil, err
	}

	report := &entity.DeleteReport{Kind: kind, ID: id}
	for _, step := range steps {
		rows, err := step.run(ctx)
		if err != nil {
			d.log(ctx).Error("Cascading delete step failed",
				slog.String("kind", kind.String()),
				slog.String("id", id.String()),
				slog.String("step", step.table),
				slog.Any("error", err),
			)

			return nil, errors.Join(domainerrors.ErrCascadeFailed.WithDetails("passo "+step.table), err)
		}
		report.Add(step.table, rows)
	}

	return report, nil
}

// categorySteps: products, subcategories, category.
func categorySteps(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID) ([]deleteStep, error) {
	categoryRepo := repoFactory.NewCategoryRepository()
	if _, err := categoryRepo.FindCategoryByID(ctx, id); err != nil {
		return nil, mapNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
	}

	productRepo := repoFactory.NewProductRepository()
	subcategoryRepo := repoFactory.NewSubcategoryRepository()

	return []deleteStep{
		{table: tableProducts, run: func(ctx context.Context) (int64, error) {
			return productRepo.DeleteProductsByCategory(ctx, id)
		}},
		{table: tableSubcategories, run: func(ctx context.Context) (int64, error) {
			return subcategoryRepo.DeleteSubcategoriesByCategory(ctx, id)
		}},
		{table: tableCategories, run: func(ctx context.Context) (int64, error) {
			return categoryRepo.DeleteCategory(ctx, id)
		}},
	}, nil
}

// subcategorySteps: products, subcategory.
func subcategorySteps(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID) ([]deleteStep, error) {
	subcategoryRepo := repoFactory.NewSubcategoryRepository()
	if _, err := subcategoryRepo.FindSubcategoryByID(ctx, id); err != nil {
		return nil, mapNotFound(err, repository.ErrSubcategoryNotFound, domainerrors.ErrSubcategoryNotFound, "failed to find subcategory")
	}

	productRepo := repoFactory.NewProductRepository()

	return []deleteStep{
		{table: tableProducts, run: func(ctx context.Context) (int64, error) {
			return productRepo.DeleteProductsBySubcategory(ctx, id)
		}},
		{table: tableSubcategories, run: func(ctx context.Context) (int64, error) {
			return subcategoryRepo.DeleteSubcategory(ctx, id)
		}},
	}, nil
}

// customerSteps: addresses, favorites, cart items, order items of the customer's orders,
// orders, newsletter subscription (by email), customer.
func customerSteps(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID) ([]deleteStep, error) {
	customerRepo := repoFactory.NewCustomerRepository()
	customer, err := customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound.WithDetails(id.String()), "failed to find customer")
	}

	addressRepo := repoFactory.NewAddressRepository()
	favoriteRepo := repoFactory.NewFavoriteRepository()
	cartItemRepo := repoFactory.NewCartItemRepository()
	orderRepo := repoFactory.NewOrderRepository()
	newsletterRepo := repoFactory.NewNewsletterRepository()

	return []deleteStep{
		{table: tableAddresses, run: func(ctx context.Context) (int64, error) {
			return addressRepo.DeleteAddressesByUser(ctx, id)
		}},
		{table: tableFavorites, run: func(ctx context.Context) (int64, error) {
			return favoriteRepo.DeleteFavoritesByUser(ctx, id)
		}},
		{table: tableCartItems, run: func(ctx context.Context) (int64, error) {
			return cartItemRepo.DeleteCartItemsByUser(ctx, id)
		}},
		{table: tableOrderItems, run: func(ctx context.Context) (int64, error) {
			orderIDs, err := orderRepo.FindOrderIDsByCustomer(ctx, id)
			if err != nil {
				return 0, err
			}

			return orderRepo.DeleteOrderItemsByOrders(ctx, orderIDs)
		}},
		{table: tableOrders, run: func(ctx context.Context) (int64, error) {
			return orderRepo.DeleteOrdersByCustomer(ctx, id)
		}},
		{table: tableNewsletter, run: func(ctx context.Context) (int64, error) {
			return newsletterRepo.DeleteByEmail(ctx, customer.Email)
		}},
		{table: tableCustomers, run: func(ctx context.Context) (int64, error) {
			return customerRepo.DeleteCustomer(ctx, id)
		}},
	}, nil
}

func (d *cascadingDeleter) logReport(ctx context.Context, report *entity.DeleteReport) {
	attrs := []any{
		slog.String("kind", report.Kind.String()),
		slog.String("id", report.ID.String()),
	}
	for _, step := range report.Steps {
		attrs = append(attrs, slog.Int64(step.Table, step.Rows))
	}
	d.log(ctx).Info("Cascading delete completed", attrs...)
}

func rootTable(kind entity.RootKind) string {
	switch kind {
	case entity.RootKindCategory:
		return tableCategories
	case entity.RootKindSubcategory:
		return tableSubcategories
	default:
		return tableCustomers
	}
}

// uniqueIDs drops nil and repeated IDs, keeping the first occurrence order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// mapNotFound turns a repository not-found sentinel into its domain error and wraps anything else.
func mapNotFound(err, sentinel error, notFound *domainerrors.BaseError, msg string) error {
	if errors.Is(err, sentinel) {
		return notFound
	}

	return errors.Wrap(err, msg)
}
