package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerAggregator derives per-customer commerce statistics from orders and the newsletter table.
type CustomerAggregator interface {
	// Aggregate computes the summary of a single customer.
	Aggregate(ctx context.Context, customer *entity.Customer) (*entity.CustomerSummary, error)

	// AggregateMany computes summaries with one order query and one newsletter query,
	// preserving the order of customers.
	AggregateMany(ctx context.Context, customers []*entity.Customer) ([]*entity.CustomerSummary, error)
}

// CreateCustomerInput is the input of CreateCustomer.
type CreateCustomerInput struct {
	Email    string
	FullName string
	Notes    string
}

// CustomerUsecase defines the customer panel use cases.
type CustomerUsecase interface {
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// UpdateCustomerNotes replaces the admin-only notes of a customer.
	UpdateCustomerNotes(ctx context.Context, id uuid.UUID, notes string) (*entity.Customer, error)

	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.CustomerSummary, error)

	// ListCustomers returns every customer with its summary, newest first.
	ListCustomers(ctx context.Context) ([]*entity.CustomerSummary, error)

	// SetNewsletter subscribes or unsubscribes an email.
	SetNewsletter(ctx context.Context, email string, subscribed bool) error

	DeleteCustomer(ctx context.Context, id uuid.UUID) (*entity.DeleteReport, error)

	// DeleteCustomers bulk-deletes customers. An empty mode selects the configured default.
	DeleteCustomers(ctx context.Context, ids []uuid.UUID, mode entity.BulkDeleteMode) (*entity.BulkDeleteResult, error)
}
