package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines customer persistence.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *entity.Customer) error
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// ListCustomers returns customers, newest first.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) (int64, error)
}

// AddressRepository defines customer address persistence.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *entity.Address) error
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	DeleteAddressesByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// FavoriteRepository defines favorite product persistence.
type FavoriteRepository interface {
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error
	DeleteFavoritesByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// CartItemRepository defines cart persistence.
type CartItemRepository interface {
	CreateCartItem(ctx context.Context, item *entity.CartItem) error
	DeleteCartItemsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// NewsletterRepository defines newsletter subscription persistence. Rows are keyed by email.
type NewsletterRepository interface {
	// Subscribe upserts a subscription on its email.
	Subscribe(ctx context.Context, email string) error
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindSubscribedEmails returns the subset of emails that have a subscription.
	FindSubscribedEmails(ctx context.Context, emails []string) ([]string, error)
}
