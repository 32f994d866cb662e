package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(sqlitetest.Open(t))

	verao := &entity.Category{Name: "Verão", Slug: "verao", DisplayOrder: 2, IsActive: true}
	acessorios := &entity.Category{Name: "Acessórios", Slug: "acessorios", DisplayOrder: 1, IsActive: false}
	basicos := &entity.Category{Name: "Básicos", Slug: "basicos", DisplayOrder: 2, IsActive: true}
	for _, c := range []*entity.Category{verao, acessorios, basicos} {
		require.NoError(t, repo.CreateCategory(ctx, c))
		assert.NotEqual(t, uuid.Nil, c.ID)
	}

	t.Run("list is ordered by display order then name", func(t *testing.T) {
		categories, err := repo.ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Acessórios", categories[0].Name)
		assert.Equal(t, "Básicos", categories[1].Name)
		assert.Equal(t, "Verão", categories[2].Name)
		assert.False(t, categories[0].IsActive)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		err := repo.CreateCategory(ctx, &entity.Category{Name: "Verão", Slug: "verao-x"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryConflict)
	})

	t.Run("update writes zero values", func(t *testing.T) {
		verao.IsActive = false
		verao.DisplayOrder = 0
		require.NoError(t, repo.UpdateCategory(ctx, verao))

		found, err := repo.FindCategoryByID(ctx, verao.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
		assert.Zero(t, found.DisplayOrder)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := repo.FindCategoryByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

		_, err = repo.DeleteCategory(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})
}

func TestSubcategoryRepository_SlugsAreScopedToCategory(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	categories := NewCategoryRepository(db)
	repo := NewSubcategoryRepository(db)

	mulher := &entity.Category{Name: "Mulher", Slug: "mulher"}
	homem := &entity.Category{Name: "Homem", Slug: "homem"}
	require.NoError(t, categories.CreateCategory(ctx, mulher))
	require.NoError(t, categories.CreateCategory(ctx, homem))

	first := &entity.Subcategory{CategoryID: mulher.ID, Name: "Verão", Slug: "verao"}
	require.NoError(t, repo.CreateSubcategory(ctx, first))
	require.NoError(t, repo.CreateSubcategory(ctx, &entity.Subcategory{CategoryID: homem.ID, Name: "Verão", Slug: "verao"}))

	err := repo.CreateSubcategory(ctx, &entity.Subcategory{CategoryID: mulher.ID, Name: "Verao", Slug: "verao"})
	assert.ErrorIs(t, err, domainerrors.ErrSubcategoryConflict)

	slugs, err := repo.ListSlugs(ctx, mulher.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"verao"}, slugs)

	slugs, err = repo.ListSlugs(ctx, mulher.ID, &first.ID)
	require.NoError(t, err)
	assert.Empty(t, slugs)

	all, err := repo.ListSubcategories(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductRepository_DeleteByCategoryIncludesSubcategoryProducts(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	products := NewProductRepository(db)
	subcategories := NewSubcategoryRepository(db)

	categoryID, otherCategoryID := uuid.New(), uuid.New()
	sub := &entity.Subcategory{CategoryID: categoryID, Name: "Longos", Slug: "longos"}
	require.NoError(t, subcategories.CreateSubcategory(ctx, sub))

	require.NoError(t, products.CreateProduct(ctx, &entity.Product{CategoryID: &categoryID, Name: "Direto"}))
	require.NoError(t, products.CreateProduct(ctx, &entity.Product{SubcategoryID: &sub.ID, Name: "Via subcategoria"}))
	require.NoError(t, products.CreateProduct(ctx, &entity.Product{CategoryID: &otherCategoryID, Name: "Outro"}))

	deleted, err := products.DeleteProductsByCategory(ctx, categoryID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	remaining, err := products.ListProducts(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Outro", remaining[0].Name)
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(sqlitetest.Open(t))

	ana, rui := uuid.New(), uuid.New()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	orders := []*entity.Order{
		{CustomerID: ana, TotalAmount: 120, CreatedAt: base, Items: []*entity.OrderItem{{ProductID: uuid.New(), Quantity: 2, Price: 60}}},
		{CustomerID: ana, TotalAmount: 80.5, CreatedAt: base.Add(time.Hour)},
		{CustomerID: rui, TotalAmount: 10, CreatedAt: base},
	}
	for _, o := range orders {
		require.NoError(t, repo.CreateOrder(ctx, o))
		assert.Equal(t, entity.OrderStatusPending, o.Status)
	}

	found, err := repo.FindOrderByID(ctx, orders[0].ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, 2, found.Items[0].Quantity)

	byCustomers, err := repo.FindOrdersByCustomers(ctx, []uuid.UUID{ana, rui})
	require.NoError(t, err)
	assert.Len(t, byCustomers, 3)

	ids, err := repo.FindOrderIDsByCustomer(ctx, ana)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{orders[0].ID, orders[1].ID}, ids)

	require.NoError(t, repo.UpdateOrderStatus(ctx, orders[1].ID, entity.OrderStatusShipped))
	shipped := entity.OrderStatusShipped
	list, err := repo.ListOrders(ctx, repository.OrderFilter{Status: &shipped})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, orders[1].ID, list[0].ID)

	assert.ErrorIs(t, repo.UpdateOrderStatus(ctx, uuid.New(), entity.OrderStatusShipped), repository.ErrOrderNotFound)

	t.Run("items are attached to their own order", func(t *testing.T) {
		all, err := repo.ListOrders(ctx, repository.OrderFilter{CustomerID: &ana})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, orders[1].ID, all[0].ID)
		assert.Empty(t, all[0].Items)
		require.Len(t, all[1].Items, 1)
		assert.Equal(t, orders[0].ID, all[1].Items[0].OrderID)

		none, err := repo.ListOrders(ctx, repository.OrderFilter{CustomerID: new(uuid.UUID)})
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	items, err := repo.DeleteOrderItemsByOrders(ctx, ids)
	require.NoError(t, err)
	assert.EqualValues(t, 1, items)

	deleted, err := repo.DeleteOrdersByCustomer(ctx, ana)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)
}

func TestNewsletterRepository_SubscribeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewNewsletterRepository(sqlitetest.Open(t))

	require.NoError(t, repo.Subscribe(ctx, "ana@example.com"))
	require.NoError(t, repo.Subscribe(ctx, "ana@example.com"))
	require.NoError(t, repo.Subscribe(ctx, "rui@example.com"))

	exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	subscribed, err := repo.FindSubscribedEmails(ctx, []string{"ana@example.com", "eva@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, subscribed)

	deleted, err := repo.DeleteByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.DeleteByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestDiscountCodeRepository_IncrementUsageRespectsLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewDiscountCodeRepository(sqlitetest.Open(t))

	limit := 2
	code := &entity.DiscountCode{Code: "VERAO10", DiscountType: entity.DiscountTypePercentage, DiscountValue: 10, UsageLimit: &limit, IsActive: true}
	require.NoError(t, repo.CreateDiscountCode(ctx, code))

	err := repo.CreateDiscountCode(ctx, &entity.DiscountCode{Code: "VERAO10", DiscountType: entity.DiscountTypeFixed, DiscountValue: 5})
	assert.ErrorIs(t, err, domainerrors.ErrDiscountCodeConflict)

	for range limit {
		ok, err := repo.IncrementUsage(ctx, code.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := repo.IncrementUsage(ctx, code.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	found, err := repo.FindDiscountCodeByCode(ctx, " verao10 ")
	require.NoError(t, err)
	assert.Equal(t, 2, found.UsageCount)
	assert.Equal(t, entity.DiscountStatusExhausted, found.Status(time.Now()))

	require.NoError(t, repo.SetDiscountCodeActive(ctx, code.ID, false))
	found, err = repo.FindDiscountCodeByID(ctx, code.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
}

func TestTaxRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTaxRepository(sqlitetest.Open(t))

	require.NoError(t, repo.UpsertTaxRate(ctx, &entity.TaxRate{CountryCode: "PT", Rate: 23, Label: "IVA"}))
	require.NoError(t, repo.UpsertTaxRate(ctx, &entity.TaxRate{CountryCode: "ES", Rate: 21, Label: "IVA"}))
	require.NoError(t, repo.UpsertTaxRate(ctx, &entity.TaxRate{CountryCode: "PT", Rate: 22, Label: "IVA Madeira"}))

	rates, err := repo.ListTaxRates(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "ES", rates[0].CountryCode)
	assert.InDelta(t, 22.0, rates[1].Rate, 0.001)
	assert.Equal(t, "IVA Madeira", rates[1].Label)

	assert.ErrorIs(t, repo.DeleteTaxRate(ctx, "FR"), repository.ErrTaxRateNotFound)

	_, err = repo.GetSettings(ctx)
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)

	require.NoError(t, repo.UpsertSettings(ctx, &entity.ShopSettings{OSSEnabled: true, DefaultShippingCost: 3.5, FreeShippingThreshold: 40}))
	require.NoError(t, repo.UpsertSettings(ctx, &entity.ShopSettings{OSSEnabled: false, DefaultShippingCost: 3.5, FreeShippingThreshold: 40}))

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.OSSEnabled)
	assert.InDelta(t, 40.0, settings.FreeShippingThreshold, 0.001)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCustomerRepository().CreateCustomer(ctx, &entity.Customer{Email: "ana@example.com"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	customers, err := NewRepositoryFactory(db).NewCustomerRepository().ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewCustomerRepository().CreateCustomer(ctx, &entity.Customer{Email: "ana@example.com"})
	})
	require.NoError(t, err)

	customers, err = NewCustomerRepository(db).ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}
