package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	repos           repository.RepositoryFactory
	aggregator      usecase.CustomerAggregator
	deleter         usecase.CascadingDeleter
	notifier        *changeNotifier
	defaultBulkMode entity.BulkDeleteMode
	logger          *slog.Logger
	now             func() time.Time
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	Repos      repository.RepositoryFactory
	Aggregator usecase.CustomerAggregator
	Deleter    usecase.CascadingDeleter
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	mode := entity.BulkDeleteBestEffort
	if params.Config != nil && params.Config.Admin != nil {
		if configured := entity.BulkDeleteMode(params.Config.Admin.BulkDeleteMode); configured.IsValid() {
			mode = configured
		}
	}

	return &customerService{
		repos:           params.Repos,
		aggregator:      params.Aggregator,
		deleter:         params.Deleter,
		notifier:        newChangeNotifier(params.Publisher, params.Logger),
		defaultBulkMode: mode,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCustomer stores a customer with a normalized email.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	customer := &entity.Customer{
		ID:        uuid.New(),
		Email:     email,
		FullName:  strings.TrimSpace(input.FullName),
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.repos.NewCustomerRepository().CreateCustomer(ctx, customer); err != nil {
		return nil, errors.WithMessage(err, "failed to create customer")
	}

	srv.log(ctx).Info("Customer created", slog.String("id", customer.ID.String()))
	srv.notifier.notify(ctx, tableCustomers, service.ChangeActionCreated, customer.ID.String())

	return customer, nil
}

// UpdateCustomerNotes replaces the notes; the rest of the record is left untouched.
func (srv *customerService) UpdateCustomerNotes(ctx context.Context, id uuid.UUID, notes string) (*entity.Customer, error) {
	customerRepo := srv.repos.NewCustomerRepository()
	customer, err := customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to find customer")
	}

	customer.Notes = notes
	customer.UpdatedAt = srv.now().UTC()
	if err := customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, mapNotFound(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to update customer")
	}

	srv.notifier.notify(ctx, tableCustomers, service.ChangeActionUpdated, customer.ID.String())

	return customer, nil
}

// GetCustomer returns a customer with its aggregated statistics.
func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.CustomerSummary, error) {
	customer, err := srv.repos.NewCustomerRepository().FindCustomerByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to find customer")
	}

	return srv.aggregator.Aggregate(ctx, customer)
}

// ListCustomers aggregates every customer in one batch.
func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.CustomerSummary, error) {
	customers, err := srv.repos.NewCustomerRepository().ListCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return srv.aggregator.AggregateMany(ctx, customers)
}

// SetNewsletter subscribes or unsubscribes an email. Both directions are idempotent.
func (srv *customerService) SetNewsletter(ctx context.Context, email string, subscribed bool) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	newsletterRepo := srv.repos.NewNewsletterRepository()
	action := service.ChangeActionCreated
	if subscribed {
		err = newsletterRepo.Subscribe(ctx, email)
	} else {
		action = service.ChangeActionDeleted
		_, err = newsletterRepo.DeleteByEmail(ctx, email)
	}
	if err != nil {
		return errors.WithMessage(err, "failed to update newsletter subscription")
	}

	srv.notifier.notify(ctx, tableNewsletter, action, email)

	return nil
}

// DeleteCustomer removes the customer and everything that hangs off it.
func (srv *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) (*entity.DeleteReport, error) {
	return srv.deleter.Delete(ctx, entity.RootKindCustomer, id)
}

// DeleteCustomers bulk-deletes customers, defaulting the mode from configuration.
func (srv *customerService) DeleteCustomers(ctx context.Context, ids []uuid.UUID, mode entity.BulkDeleteMode) (*entity.BulkDeleteResult, error) {
	if mode == "" {
		mode = srv.defaultBulkMode
	}

	return srv.deleter.DeleteCustomers(ctx, ids, mode)
}
