package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/postgres"
	"backoffice/internal/infra/persistence/sqlitetest"
	"backoffice/internal/usecase"
	mockService "backoffice/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv wires services against an in-memory database.
type testEnv struct {
	db        *gorm.DB
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	publisher *mockService.MockEventPublisher
	cfg       *config.Config
	logger    *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := sqlitetest.Open(t)
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishChangeEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return &testEnv{
		db:        db,
		txManager: postgres.NewTransactionManager(db),
		repos:     postgres.NewRepositoryFactory(db),
		publisher: publisher,
		cfg: &config.Config{Admin: &config.AdminConfig{
			BulkDeleteMode:    string(entity.BulkDeleteBestEffort),
			MaxBulkDelete:     100,
			VIPOrderThreshold: 3,
			VIPSpendThreshold: 300,
		}},
		logger: newDiscardLogger(),
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func (env *testEnv) deleter() usecase.CascadingDeleter {
	return NewCascadingDeleter(CascadingDeleterParams{
		TxManager: env.txManager,
		Publisher: env.publisher,
		Config:    env.cfg,
		Logger:    env.logger,
	})
}

func (env *testEnv) catalogService() *catalogService {
	return NewCatalogService(CatalogServiceParams{
		TxManager: env.txManager,
		Repos:     env.repos,
		Deleter:   env.deleter(),
		Publisher: env.publisher,
		Logger:    env.logger,
	}).(*catalogService)
}

func (env *testEnv) customerService() *customerService {
	return NewCustomerService(CustomerServiceParams{
		Repos:      env.repos,
		Aggregator: NewCustomerAggregator(env.repos, env.cfg),
		Deleter:    env.deleter(),
		Publisher:  env.publisher,
		Config:     env.cfg,
		Logger:     env.logger,
	}).(*customerService)
}

// seedCustomer stores a customer with one row in every dependent table and the given order totals.
func (env *testEnv) seedCustomer(t *testing.T, email string, totals ...float64) *entity.Customer {
	t.Helper()
	ctx := context.Background()

	customer := &entity.Customer{Email: email, FullName: "Cliente " + email, CreatedAt: time.Now().UTC()}
	require.NoError(t, env.repos.NewCustomerRepository().CreateCustomer(ctx, customer))

	productID := uuid.New()
	require.NoError(t, env.repos.NewAddressRepository().CreateAddress(ctx, &entity.Address{
		UserID: customer.ID, Label: "Casa", Street: "Rua Augusta 1", City: "Lisboa", PostalCode: "1100-053", Country: "PT",
	}))
	require.NoError(t, env.repos.NewFavoriteRepository().CreateFavorite(ctx, &entity.Favorite{UserID: customer.ID, ProductID: productID}))
	require.NoError(t, env.repos.NewCartItemRepository().CreateCartItem(ctx, &entity.CartItem{UserID: customer.ID, ProductID: productID, Quantity: 1}))
	require.NoError(t, env.repos.NewNewsletterRepository().Subscribe(ctx, email))

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, total := range totals {
		require.NoError(t, env.repos.NewOrderRepository().CreateOrder(ctx, &entity.Order{
			CustomerID:  customer.ID,
			TotalAmount: total,
			Status:      entity.OrderStatusCompleted,
			Items:       []*entity.OrderItem{{ProductID: productID, Quantity: 1, Price: total}},
			CreatedAt:   base.AddDate(0, 0, i),
		}))
	}

	return customer
}

func (env *testEnv) count(t *testing.T, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, env.db.Table(table).Count(&n).Error)

	return n
}
