package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	deleter   usecase.CascadingDeleter
	notifier  *changeNotifier
	logger    *slog.Logger
	now       func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Deleter   usecase.CascadingDeleter
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		repos:     params.Repos,
		deleter:   params.Deleter,
		notifier:  newChangeNotifier(params.Publisher, params.Logger),
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory stores a category whose slug is derived from its name.
func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	name, err := requireName(input.Name, "nome")
	if err != nil {
		return nil, err
	}
	slug, err := slugFor(name)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	category := &entity.Category{
		ID:           uuid.New(),
		Name:         name,
		Slug:         slug,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.repos.NewCategoryRepository().CreateCategory(ctx, category); err != nil {
		return nil, errors.WithMessage(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("id", category.ID.String()), slog.String("slug", slug))
	srv.notifier.notify(ctx, tableCategories, service.ChangeActionCreated, category.ID.String())

	return category, nil
}

// UpdateCategory rewrites a category and re-derives its slug.
func (srv *catalogService) UpdateCategory(ctx context.Context, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	name, err := requireName(input.Name, "nome")
	if err != nil {
		return nil, err
	}
	slug, err := slugFor(name)
	if err != nil {
		return nil, err
	}

	categoryRepo := srv.repos.NewCategoryRepository()
	category, err := categoryRepo.FindCategoryByID(ctx, input.ID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
	}

	category.Name = name
	category.Slug = slug
	category.DisplayOrder = input.DisplayOrder
	category.IsActive = input.IsActive
	category.UpdatedAt = srv.now().UTC()
	if err := categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, mapNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to update category")
	}

	srv.notifier.notify(ctx, tableCategories, service.ChangeActionUpdated, category.ID.String())

	return category, nil
}

// ListCategories returns categories in display order.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.repos.NewCategoryRepository().ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// LoadCatalog fetches categories and subcategories concurrently and nests them.
func (srv *catalogService) LoadCatalog(ctx context.Context) ([]*entity.CategoryTree, error) {
	var (
		categories    []*entity.Category
		subcategories []*entity.Subcategory
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(2)
	g.Go(func() error {
		var err error
		categories, err = srv.repos.NewCategoryRepository().ListCategories(gctx)

		return errors.Wrap(err, "failed to list categories")
	})
	g.Go(func() error {
		var err error
		subcategories, err = srv.repos.NewSubcategoryRepository().ListSubcategories(gctx, nil)

		return errors.Wrap(err, "failed to list subcategories")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]*entity.Subcategory, len(categories))
	for _, sub := range subcategories {
		byCategory[sub.CategoryID] = append(byCategory[sub.CategoryID], sub)
	}

	trees := make([]*entity.CategoryTree, 0, len(categories))
	for _, c := range categories {
		children := byCategory[c.ID]
		if children == nil {
			children = []*entity.Subcategory{}
		}
		trees = append(trees, &entity.CategoryTree{Category: c, Subcategories: children})
	}

	return trees, nil
}

// DeleteCategory removes the category with its products and subcategories.
func (srv *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) (*entity.DeleteReport, error) {
	return srv.deleter.Delete(ctx, entity.RootKindCategory, id)
}

// CreateSubcategory stores a subcategory with a slug unique inside its parent.
// The slug lookup and the insert share a transaction.
func (srv *catalogService) CreateSubcategory(ctx context.Context, input *usecase.CreateSubcategoryInput) (*entity.Subcategory, error) {
	name, err := requireName(input.Name, "nome")
	if err != nil {
		return nil, err
	}
	base, err := slugFor(name)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	subcategory := &entity.Subcategory{
		ID:         uuid.New(),
		CategoryID: input.CategoryID,
		Name:       name,
		IsActive:   input.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	create := func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewCategoryRepository().FindCategoryByID(ctx, input.CategoryID); err != nil {
			return mapNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find parent category")
		}

		subcategoryRepo := repoFactory.NewSubcategoryRepository()
		taken, err := subcategoryRepo.ListSlugs(ctx, input.CategoryID, nil)
		if err != nil {
			return errors.Wrap(err, "failed to list subcategory slugs")
		}
		subcategory.Slug = util.UniqueSlug(base, taken)

		return subcategoryRepo.CreateSubcategory(ctx, subcategory)
	}

	err = srv.txManager.Execute(ctx, create)
	if errors.Is(err, domainerrors.ErrSubcategoryConflict) {
		// A concurrent insert took the slug after it was computed; the next attempt sees it.
		srv.log(ctx).Warn("Subcategory slug taken concurrently, retrying",
			slog.String("categoryID", input.CategoryID.String()),
			slog.String("slug", subcategory.Slug),
		)
		err = srv.txManager.Execute(ctx, create)
	}
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create subcategory")
	}

	srv.log(ctx).Info("Subcategory created",
		slog.String("id", subcategory.ID.String()),
		slog.String("categoryID", subcategory.CategoryID.String()),
		slog.String("slug", subcategory.Slug),
	)
	srv.notifier.notify(ctx, tableSubcategories, service.ChangeActionCreated, subcategory.ID.String())

	return subcategory, nil
}

// UpdateSubcategory renames a subcategory, re-deriving its slug against its siblings.
func (srv *catalogService) UpdateSubcategory(ctx context.Context, input *usecase.UpdateSubcategoryInput) (*entity.Subcategory, error) {
	name, err := requireName(input.Name, "nome")
	if err != nil {
		return nil, err
	}
	base, err := slugFor(name)
	if err != nil {
		return nil, err
	}

	var subcategory *entity.Subcategory
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subcategoryRepo := repoFactory.NewSubcategoryRepository()

		var err error
		subcategory, err = subcategoryRepo.FindSubcategoryByID(ctx, input.ID)
		if err != nil {
			return mapNotFound(err, repository.ErrSubcategoryNotFound, domainerrors.ErrSubcategoryNotFound, "failed to find subcategory")
		}

		taken, err := subcategoryRepo.ListSlugs(ctx, subcategory.CategoryID, &subcategory.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list subcategory slugs")
		}

		subcategory.Name = name
		subcategory.Slug = util.UniqueSlug(base, taken)
		subcategory.IsActive = input.IsActive
		subcategory.UpdatedAt = srv.now().UTC()

		return subcategoryRepo.UpdateSubcategory(ctx, subcategory)
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to update subcategory")
	}

	srv.notifier.notify(ctx, tableSubcategories, service.ChangeActionUpdated, subcategory.ID.String())

	return subcategory, nil
}

// ListSubcategories returns the subcategories of a category by name.
func (srv *catalogService) ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error) {
	subcategories, err := srv.repos.NewSubcategoryRepository().ListSubcategories(ctx, &categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	return subcategories, nil
}

// DeleteSubcategory removes the subcategory with its products.
func (srv *catalogService) DeleteSubcategory(ctx context.Context, id uuid.UUID) (*entity.DeleteReport, error) {
	return srv.deleter.Delete(ctx, entity.RootKindSubcategory, id)
}

// CreateProduct stores a product after checking its category and subcategory agree.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	name, err := requireName(input.Name, "nome")
	if err != nil {
		return nil, err
	}
	if input.Price < 0 {
		return nil, domainerrors.NewValidationError("preço não pode ser negativo")
	}

	categoryID := input.CategoryID
	if input.SubcategoryID != nil {
		subcategory, err := srv.repos.NewSubcategoryRepository().FindSubcategoryByID(ctx, *input.SubcategoryID)
		if err != nil {
			return nil, mapNotFound(err, repository.ErrSubcategoryNotFound, domainerrors.ErrSubcategoryNotFound, "failed to find subcategory")
		}
		switch {
		case categoryID == nil:
			categoryID = &subcategory.CategoryID
		case *categoryID != subcategory.CategoryID:
			return nil, domainerrors.NewValidationError("a subcategoria não pertence à categoria")
		}
	}
	if categoryID != nil {
		if _, err := srv.repos.NewCategoryRepository().FindCategoryByID(ctx, *categoryID); err != nil {
			return nil, mapNotFound(err, repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound, "failed to find category")
		}
	}

	now := srv.now().UTC()
	product := &entity.Product{
		ID:            uuid.New(),
		CategoryID:    categoryID,
		SubcategoryID: input.SubcategoryID,
		Name:          name,
		Price:         entity.RoundCents(input.Price),
		IsActive:      input.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := srv.repos.NewProductRepository().CreateProduct(ctx, product); err != nil {
		return nil, errors.WithMessage(err, "failed to create product")
	}

	srv.notifier.notify(ctx, tableProducts, service.ChangeActionCreated, product.ID.String())

	return product, nil
}

// ListProducts returns products, optionally filtered by category or subcategory.
func (srv *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.repos.NewProductRepository().ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// slugFor derives the slug of a name; a name without any letter or digit has none.
func slugFor(name string) (string, error) {
	slug := util.Slugify(name)
	if slug == "" {
		return "", domainerrors.NewValidationError("o nome tem de conter letras ou números")
	}

	return slug, nil
}
