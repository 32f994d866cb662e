package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	q *query.Query
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		q: query.Use(db),
	}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	ensureID(&product.ID)
	productM := fromProductDomain(product)

	if err := repo.q.ProductModel.WithContext(ctx).Create(productM); err != nil {
		return translateWriteError(err, nil, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// ListProducts retrieves products by name.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	p := repo.q.ProductModel
	do := p.WithContext(ctx).Order(p.Name.Asc())
	if filter.CategoryID != nil {
		do = do.Where(p.CategoryID.Eq(*filter.CategoryID))
	}
	if filter.SubcategoryID != nil {
		do = do.Where(p.SubcategoryID.Eq(*filter.SubcategoryID))
	}

	productModels, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, m := range productModels {
		products = append(products, toProductDomain(m))
	}

	return products, nil
}

// DeleteProductsByCategory removes products of the category, including those only linked
// through one of its subcategories.
func (repo *productRepository) DeleteProductsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	p, s := repo.q.ProductModel, repo.q.SubcategoryModel
	subcategoryIDs := s.WithContext(ctx).Select(s.ID).Where(s.CategoryID.Eq(categoryID))

	result, err := p.WithContext(ctx).
		Where(p.CategoryID.Eq(categoryID)).
		Or(p.Columns(p.SubcategoryID).In(subcategoryIDs)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete products by category")
	}

	return result.RowsAffected, nil
}

// DeleteProductsBySubcategory removes products of a subcategory.
func (repo *productRepository) DeleteProductsBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error) {
	result, err := repo.q.ProductModel.WithContext(ctx).
		Where(repo.q.ProductModel.SubcategoryID.Eq(subcategoryID)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete products by subcategory")
	}

	return result.RowsAffected, nil
}
