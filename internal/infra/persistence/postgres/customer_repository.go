package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the domain.CustomerRepository interface.
type customerRepository struct {
	q *query.Query
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		q: query.Use(db),
	}
}

// CreateCustomer persists a new customer.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	ensureID(&customer.ID)
	customerM := fromCustomerDomain(customer)

	if err := repo.q.CustomerModel.WithContext(ctx).Create(customerM); err != nil {
		return translateWriteError(err, domainerrors.ErrCustomerEmailConflict, customer.Email)
	}

	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by its unique ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customerM, err := repo.q.CustomerModel.WithContext(ctx).
		Where(repo.q.CustomerModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(customerM), nil
}

// ListCustomers retrieves every customer, newest first.
func (repo *customerRepository) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customerModels, err := repo.q.CustomerModel.WithContext(ctx).
		Order(repo.q.CustomerModel.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, m := range customerModels {
		customers = append(customers, toCustomerDomain(m))
	}

	return customers, nil
}

// UpdateCustomer writes the editable columns of a customer.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	c := repo.q.CustomerModel
	result, err := c.WithContext(ctx).
		Where(c.ID.Eq(customer.ID)).
		UpdateSimple(
			c.FullName.Value(customer.FullName),
			c.Notes.Value(customer.Notes),
			c.UpdatedAt.Value(customer.UpdatedAt),
		)
	if err != nil {
		return translateWriteError(err, nil, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// DeleteCustomer removes the customer row.
func (repo *customerRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := repo.q.CustomerModel.WithContext(ctx).
		Where(repo.q.CustomerModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrCustomerNotFound
	}

	return result.RowsAffected, nil
}
