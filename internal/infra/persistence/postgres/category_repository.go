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

// categoryRepository implements the domain.CategoryRepository interface.
type categoryRepository struct {
	q *query.Query
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		q: query.Use(db),
	}
}

// CreateCategory persists a new category.
func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	ensureID(&category.ID)
	categoryM := fromCategoryDomain(category)

	if err := repo.q.CategoryModel.WithContext(ctx).Create(categoryM); err != nil {
		return translateWriteError(err, domainerrors.ErrCategoryConflict, category.Name)
	}

	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindCategoryByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	categoryM, err := repo.q.CategoryModel.WithContext(ctx).
		Where(repo.q.CategoryModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(categoryM), nil
}

// ListCategories retrieves every category ordered for display.
func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	c := repo.q.CategoryModel
	categoryModels, err := c.WithContext(ctx).Order(c.DisplayOrder.Asc(), c.Name.Asc()).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, m := range categoryModels {
		categories = append(categories, toCategoryDomain(m))
	}

	return categories, nil
}

// UpdateCategory writes every editable column, zero values included.
func (repo *categoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	c := repo.q.CategoryModel
	result, err := c.WithContext(ctx).
		Where(c.ID.Eq(category.ID)).
		UpdateSimple(
			c.Name.Value(category.Name),
			c.Slug.Value(category.Slug),
			c.DisplayOrder.Value(category.DisplayOrder),
			c.IsActive.Value(category.IsActive),
			c.UpdatedAt.Value(category.UpdatedAt),
		)
	if err != nil {
		return translateWriteError(err, domainerrors.ErrCategoryConflict, category.Name)
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory removes the category row.
func (repo *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := repo.q.CategoryModel.WithContext(ctx).
		Where(repo.q.CategoryModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrCategoryNotFound
	}

	return result.RowsAffected, nil
}
