package impl

import (
	"context"
	"testing"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateCategory(t *testing.T) {
	env := newTestEnv(t)
	srv := env.catalogService()
	ctx := context.Background()

	category, err := srv.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "  Roupa de Verão ", DisplayOrder: 1, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "Roupa de Verão", category.Name)
	assert.Equal(t, "roupa-de-verao", category.Slug)

	_, err = srv.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Roupa de Verão"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryConflict)

	for _, name := range []string{"", "   ", "!!!"} {
		_, err = srv.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: name})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "name %q", name)
	}

	updated, err := srv.UpdateCategory(ctx, &usecase.UpdateCategoryInput{ID: category.ID, Name: "Praia"})
	require.NoError(t, err)
	assert.Equal(t, "praia", updated.Slug)
	assert.False(t, updated.IsActive)

	_, err = srv.UpdateCategory(ctx, &usecase.UpdateCategoryInput{ID: uuid.New(), Name: "Inverno"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_SubcategorySlugsAreUniquePerCategory(t *testing.T) {
	env := newTestEnv(t)
	srv := env.catalogService()
	ctx := context.Background()

	mulher, err := srv.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Mulher"})
	require.NoError(t, err)
	homem, err := srv.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Homem"})
	require.NoError(t, err)

	var slugs []string
	for _, name := range []string{"Verão", "Verao", "VERÃO"} {
		sub, err := srv.CreateSubcategory(ctx, &usecase.CreateSubcategoryInput{CategoryID: mulher.ID, Name: name})
		require.NoError(t, err)
		slugs = append(slugs, sub.Slug)
	}
	assert.Equal(t, []string{"verao", "verao-1", "verao-2"}, slugs)

	other, err := srv.CreateSubcategory(ctx, &usecase.CreateSubcategoryInput{CategoryID: homem.ID, Name: "Verão"})
	require.NoError(t, err)
	assert.Equal(t, "verao", other.Slug)

	_, err = srv.CreateSubcategory(ctx, &usecase.CreateSubcategoryInput{CategoryID: uuid.New(), Name: "Verão"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	t.Run("renaming keeps its own slug available", func(t *testing.T) {
		subs, err := srv.ListSubcategories(ctx, mulher.ID)
		require.NoError(t, err)
		require.Len(t, subs, 3)

		var first uuid.UUID
		for _, s := range subs {
			if s.Slug == "verao" {
				first = s.ID
			}
		}
		renamed, err := srv.UpdateSubcategory(ctx, &usecase.UpdateSubcategoryInput{ID: first, Name: "Verão"})
		require.NoError(t, err)
		assert.Equal(t, "verao", renamed.Slug)
	})
}

func TestCatalogService_CreateSubcategoryRetriesConcurrentSlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mulher, err := env.catalogService().CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Mulher"})
	require.NoError(t, err)
	existing, err := env.catalogService().CreateSubcategory(ctx, &usecase.CreateSubcategoryInput{CategoryID: mulher.ID, Name: "Verao"})
	require.NoError(t, err)
	require.Equal(t, "verao", existing.Slug)

	t.Run("one lost race takes the next suffix", func(t *testing.T) {
		txManager := &staleSlugTxManager{TransactionManager: env.txManager, staleReads: 1}
		srv := env.catalogService()
		srv.txManager = txManager

		sub, err := srv.CreateSubcategory(ctx, &usecase.CreateSubcategoryInput{CategoryID: mulher.ID, Name: "Verão"})
		require.NoError(t, err)
		assert.Equal(t, "verao-1", sub.Slug)
		assert.Equal(t, 2, txManager.executions)
	})

	t.Run("a second lost race is a conflict", func(t *testing.T) {
		txManager := &staleSlugTxManager{TransactionManager: env.txManager, staleReads: 2}
		srv := env.catalogService()
		srv.txManager = txManager

		_, err := srv.CreateSubcategory(ctx, &usecase.CreateSubcategoryInput{CategoryID: mulher.ID, Name: "Verão"})
		assert.ErrorIs(t, err, domainerrors.ErrSubcategoryConflict)
		assert.Equal(t, 2, txManager.executions)
	})

	subs, err := env.catalogService().ListSubcategories(ctx, mulher.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

// staleSlugTxManager hands out subcategory repositories whose ListSlugs misses every
// existing slug for the first staleReads calls, as if another writer committed right after the read.
type staleSlugTxManager struct {
	repository.TransactionManager
	staleReads int
	executions int
}

func (m *staleSlugTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	m.executions++

	return m.TransactionManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(staleSlugFactory{RepositoryFactory: factory, manager: m})
	})
}

type staleSlugFactory struct {
	repository.RepositoryFactory
	manager *staleSlugTxManager
}

func (f staleSlugFactory) NewSubcategoryRepository() repository.SubcategoryRepository {
	return staleSlugRepository{SubcategoryRepository: f.RepositoryFactory.NewSubcategoryRepository(), manager: f.manager}
}

type staleSlugRepository struct {
	repository.SubcategoryRepository
	manager *staleSlugTxManager
}

func (r staleSlugRepository) ListSlugs(ctx context.Context, categoryID uuid.UUID, excludeID *uuid.UUID) ([]string, error) {
	if r.manager.staleReads > 0 {
		r.manager.staleReads--

		return nil, nil
	}

	return r.SubcategoryRepository.ListSlugs(ctx, categoryID, excludeID)
}

func TestCatalogService_LoadCatalog(t *testing.T) {
	env := newTestEnv(t)
	srv := env.catalogService()
	ctx := context.Background()
	vestidos, subs, other := seedVestidos(t, env)

	trees, err := srv.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, trees, 2)

	byID := make(map[uuid.UUID]int, len(trees))
	for _, tree := range trees {
		byID[tree.Category.ID] = len(tree.Subcategories)
	}
	assert.Equal(t, len(subs), byID[vestidos.ID])
	assert.Equal(t, 0, byID[other.ID])
	for _, tree := range trees {
		assert.NotNil(t, tree.Subcategories)
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	env := newTestEnv(t)
	srv := env.catalogService()
	ctx := context.Background()
	vestidos, subs, other := seedVestidos(t, env)

	t.Run("category is inferred from the subcategory", func(t *testing.T) {
		product, err := srv.CreateProduct(ctx, &usecase.CreateProductInput{SubcategoryID: &subs[0].ID, Name: "Vestido midi", Price: 59.999})
		require.NoError(t, err)
		require.NotNil(t, product.CategoryID)
		assert.Equal(t, vestidos.ID, *product.CategoryID)
		assert.InDelta(t, 60.0, product.Price, 0.001)
	})

	t.Run("mismatched category is rejected", func(t *testing.T) {
		_, err := srv.CreateProduct(ctx, &usecase.CreateProductInput{CategoryID: &other.ID, SubcategoryID: &subs[0].ID, Name: "Errado"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown references", func(t *testing.T) {
		missing := uuid.New()
		_, err := srv.CreateProduct(ctx, &usecase.CreateProductInput{CategoryID: &missing, Name: "Fantasma"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

		_, err = srv.CreateProduct(ctx, &usecase.CreateProductInput{SubcategoryID: &missing, Name: "Fantasma"})
		assert.ErrorIs(t, err, domainerrors.ErrSubcategoryNotFound)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := srv.CreateProduct(ctx, &usecase.CreateProductInput{CategoryID: &other.ID, Name: "Saldo", Price: -1})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	products, err := srv.ListProducts(ctx, repository.ProductFilter{SubcategoryID: &subs[0].ID})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_DeleteCategoryCascades(t *testing.T) {
	env := newTestEnv(t)
	srv := env.catalogService()
	ctx := context.Background()
	vestidos, _, _ := seedVestidos(t, env)

	report, err := srv.DeleteCategory(ctx, vestidos.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, report.Rows(tableProducts))

	_, err = srv.DeleteCategory(ctx, vestidos.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
