package impl

import (
	"context"
	"testing"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/persistence/model"
	mockService "backoffice/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seedVestidos creates a category with two subcategories, three direct products and
// one product under each subcategory, plus an unrelated category with one product.
func seedVestidos(t *testing.T, env *testEnv) (vestidos *entity.Category, subs []*entity.Subcategory, other *entity.Category) {
	t.Helper()
	ctx := context.Background()

	vestidos = &entity.Category{Name: "Vestidos", Slug: "vestidos", IsActive: true}
	other = &entity.Category{Name: "Calçado", Slug: "calcado", IsActive: true}
	require.NoError(t, env.repos.NewCategoryRepository().CreateCategory(ctx, vestidos))
	require.NoError(t, env.repos.NewCategoryRepository().CreateCategory(ctx, other))

	for _, name := range []string{"Longos", "Curtos"} {
		sub := &entity.Subcategory{CategoryID: vestidos.ID, Name: name, Slug: name}
		require.NoError(t, env.repos.NewSubcategoryRepository().CreateSubcategory(ctx, sub))
		subs = append(subs, sub)
	}

	products := env.repos.NewProductRepository()
	for i := 0; i < 3; i++ {
		require.NoError(t, products.CreateProduct(ctx, &entity.Product{CategoryID: &vestidos.ID, Name: "Vestido direto", Price: 39.9}))
	}
	for _, sub := range subs {
		require.NoError(t, products.CreateProduct(ctx, &entity.Product{SubcategoryID: &sub.ID, Name: "Vestido " + sub.Name, Price: 49.9}))
	}
	require.NoError(t, products.CreateProduct(ctx, &entity.Product{CategoryID: &other.ID, Name: "Sandália", Price: 25}))

	return vestidos, subs, other
}

func TestCascadingDeleter_DeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	vestidos, _, other := seedVestidos(t, env)

	report, err := env.deleter().Delete(ctx, entity.RootKindCategory, vestidos.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.RootKindCategory, report.Kind)
	assert.Equal(t, vestidos.ID, report.ID)
	require.Len(t, report.Steps, 3)
	assert.Equal(t, []string{tableProducts, tableSubcategories, tableCategories},
		[]string{report.Steps[0].Table, report.Steps[1].Table, report.Steps[2].Table})
	assert.EqualValues(t, 5, report.Rows(tableProducts))
	assert.EqualValues(t, 2, report.Rows(tableSubcategories))
	assert.EqualValues(t, 1, report.Rows(tableCategories))

	remaining, err := env.repos.NewProductRepository().ListProducts(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, *remaining[0].CategoryID)
	assert.EqualValues(t, 0, env.count(t, tableSubcategories))

	_, err = env.repos.NewCategoryRepository().FindCategoryByID(ctx, vestidos.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCascadingDeleter_DeleteSubcategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	vestidos, subs, _ := seedVestidos(t, env)

	report, err := env.deleter().Delete(ctx, entity.RootKindSubcategory, subs[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.Rows(tableProducts))
	assert.EqualValues(t, 1, report.Rows(tableSubcategories))

	left, err := env.repos.NewSubcategoryRepository().ListSubcategories(ctx, &vestidos.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, subs[1].ID, left[0].ID)
	assert.EqualValues(t, 5, env.count(t, tableProducts))
}

func TestCascadingDeleter_DeleteCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.seedCustomer(t, "ana@example.pt", 120, 80)
	rui := env.seedCustomer(t, "rui@example.pt", 10)

	report, err := env.deleter().Delete(ctx, entity.RootKindCustomer, ana.ID)
	require.NoError(t, err)

	tables := make([]string, 0, len(report.Steps))
	for _, step := range report.Steps {
		tables = append(tables, step.Table)
	}
	assert.Equal(t, []string{
		tableAddresses, tableFavorites, tableCartItems, tableOrderItems, tableOrders, tableNewsletter, tableCustomers,
	}, tables)
	assert.EqualValues(t, 2, report.Rows(tableOrderItems))
	assert.EqualValues(t, 2, report.Rows(tableOrders))
	assert.EqualValues(t, 1, report.Rows(tableNewsletter))

	// Rui keeps everything.
	assert.EqualValues(t, 1, env.count(t, tableCustomers))
	assert.EqualValues(t, 1, env.count(t, tableAddresses))
	assert.EqualValues(t, 1, env.count(t, tableOrders))
	assert.EqualValues(t, 1, env.count(t, tableOrderItems))
	subscribed, err := env.repos.NewNewsletterRepository().ExistsByEmail(ctx, rui.Email)
	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestCascadingDeleter_Delete_Validation(t *testing.T) {
	env := newTestEnv(t)
	deleter := env.deleter()
	ctx := context.Background()

	_, err := deleter.Delete(ctx, entity.RootKind("product"), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = deleter.Delete(ctx, entity.RootKindCategory, uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = deleter.Delete(ctx, entity.RootKindCategory, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	_, err = deleter.Delete(ctx, entity.RootKindCustomer, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCascadingDeleter_StepFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.seedCustomer(t, "ana@example.pt", 50)

	// Addresses are removed before favorites, so the failure must undo them.
	require.NoError(t, env.db.Migrator().DropTable(&model.FavoriteModel{}))

	report, err := env.deleter().Delete(ctx, entity.RootKindCustomer, ana.ID)
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrCascadeFailed)
	assert.Equal(t, "passo "+tableFavorites, domainerrors.FromError(err).Details())

	assert.EqualValues(t, 1, env.count(t, tableCustomers))
	assert.EqualValues(t, 1, env.count(t, tableAddresses))
	assert.EqualValues(t, 1, env.count(t, tableOrders))
}

func TestCascadingDeleter_DeleteCustomers_BestEffort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.seedCustomer(t, "ana@example.pt", 10)
	rui := env.seedCustomer(t, "rui@example.pt")
	missing := uuid.New()

	result, err := env.deleter().DeleteCustomers(ctx, []uuid.UUID{ana.ID, missing, rui.ID, ana.ID}, entity.BulkDeleteBestEffort)
	require.NoError(t, err)

	assert.Equal(t, entity.BulkDeleteBestEffort, result.Mode)
	assert.Equal(t, []uuid.UUID{ana.ID, rui.ID}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, missing, result.Failed[0].ID)
	assert.Contains(t, result.Failed[0].Reason, domainerrors.ErrCustomerNotFound.Message())
	assert.EqualValues(t, 0, env.count(t, tableCustomers))
}

func TestCascadingDeleter_DeleteCustomers_AllOrNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ana := env.seedCustomer(t, "ana@example.pt", 10)
	rui := env.seedCustomer(t, "rui@example.pt")

	t.Run("one missing customer keeps everyone", func(t *testing.T) {
		result, err := env.deleter().DeleteCustomers(ctx, []uuid.UUID{ana.ID, uuid.New()}, entity.BulkDeleteAllOrNothing)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
		assert.EqualValues(t, 2, env.count(t, tableCustomers))
		assert.EqualValues(t, 1, env.count(t, tableOrders))
	})

	t.Run("all present", func(t *testing.T) {
		result, err := env.deleter().DeleteCustomers(ctx, []uuid.UUID{ana.ID, rui.ID}, entity.BulkDeleteAllOrNothing)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{ana.ID, rui.ID}, result.Succeeded)
		assert.Empty(t, result.Failed)
		assert.EqualValues(t, 0, env.count(t, tableCustomers))
		assert.EqualValues(t, 0, env.count(t, tableNewsletter))
	})
}

func TestCascadingDeleter_DeleteCustomers_Validation(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Admin.MaxBulkDelete = 2
	deleter := env.deleter()
	ctx := context.Background()

	tests := []struct {
		name string
		ids  []uuid.UUID
		mode entity.BulkDeleteMode
	}{
		{name: "unknown mode", ids: []uuid.UUID{uuid.New()}, mode: "sometimes"},
		{name: "empty selection", ids: nil, mode: entity.BulkDeleteBestEffort},
		{name: "only nil ids", ids: []uuid.UUID{uuid.Nil}, mode: entity.BulkDeleteBestEffort},
		{name: "above the limit", ids: []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}, mode: entity.BulkDeleteAllOrNothing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deleter.DeleteCustomers(ctx, tt.ids, tt.mode)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCascadingDeleter_PublishesAfterCommit(t *testing.T) {
	env := newTestEnv(t)
	ctx := deliverycontext.WithOperator(context.Background(), "ops@example.com")
	vestidos, _, _ := seedVestidos(t, env)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishChangeEvent(mock.Anything, mock.MatchedBy(func(event *service.ChangeEvent) bool {
			return event.Table == tableCategories &&
				event.Action == service.ChangeActionDeleted &&
				event.Operator == "ops@example.com" &&
				len(event.IDs) == 1 && event.IDs[0] == vestidos.ID.String()
		})).
		Return(errors.New("topic unavailable")).
		Once()
	env.publisher = publisher

	// A failed publish does not fail the delete.
	report, err := env.deleter().Delete(ctx, entity.RootKindCategory, vestidos.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.Rows(tableCategories))
}

func TestUniqueIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.Equal(t, []uuid.UUID{a, b}, uniqueIDs([]uuid.UUID{a, uuid.Nil, b, a, b}))
	assert.Empty(t, uniqueIDs(nil))
}
