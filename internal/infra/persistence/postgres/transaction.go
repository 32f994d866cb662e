// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// Inside Execute its query set is bound to the transaction; from NewRepositoryFactory to the pool.
type gormRepositoryFactory struct {
	q *query.Query
}

// NewRepositoryFactory returns a factory whose repositories run outside any transaction.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{q: query.Use(db)}
}

func (f *gormRepositoryFactory) NewCategoryRepository() repository.CategoryRepository {
	return &categoryRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewSubcategoryRepository() repository.SubcategoryRepository {
	return &subcategoryRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return &productRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewCustomerRepository() repository.CustomerRepository {
	return &customerRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return &addressRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return &favoriteRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewCartItemRepository() repository.CartItemRepository {
	return &cartItemRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewNewsletterRepository() repository.NewsletterRepository {
	return &newsletterRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewDiscountCodeRepository() repository.DiscountCodeRepository {
	return &discountCodeRepository{q: f.q}
}

func (f *gormRepositoryFactory) NewTaxRepository() repository.TaxRepository {
	return &taxRepository{q: f.q}
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := query.Use(tm.db.WithContext(ctx)).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{q: tx.Query}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			// Return the original business error, annotated with the rollback failure.
			return errors.WithMessagef(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
