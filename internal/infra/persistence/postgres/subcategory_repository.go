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

// subcategoryRepository implements the domain.SubcategoryRepository interface.
type subcategoryRepository struct {
	q *query.Query
}

// NewSubcategoryRepository is the constructor for subcategoryRepository.
func NewSubcategoryRepository(db *gorm.DB) repository.SubcategoryRepository {
	return &subcategoryRepository{
		q: query.Use(db),
	}
}

// CreateSubcategory persists a new subcategory.
func (repo *subcategoryRepository) CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	ensureID(&subcategory.ID)
	subcategoryM := fromSubcategoryDomain(subcategory)

	if err := repo.q.SubcategoryModel.WithContext(ctx).Create(subcategoryM); err != nil {
		return translateWriteError(err, domainerrors.ErrSubcategoryConflict, subcategory.Slug)
	}

	subcategory.CreatedAt = subcategoryM.CreatedAt
	subcategory.UpdatedAt = subcategoryM.UpdatedAt

	return nil
}

// FindSubcategoryByID retrieves a subcategory by its unique ID.
func (repo *subcategoryRepository) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	subcategoryM, err := repo.q.SubcategoryModel.WithContext(ctx).
		Where(repo.q.SubcategoryModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubcategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find subcategory by ID")
	}

	return toSubcategoryDomain(subcategoryM), nil
}

// ListSubcategories retrieves subcategories by name, optionally of one category.
func (repo *subcategoryRepository) ListSubcategories(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Subcategory, error) {
	s := repo.q.SubcategoryModel
	do := s.WithContext(ctx).Order(s.Name.Asc())
	if categoryID != nil {
		do = do.Where(s.CategoryID.Eq(*categoryID))
	}

	subcategoryModels, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	subcategories := make([]*entity.Subcategory, 0, len(subcategoryModels))
	for _, m := range subcategoryModels {
		subcategories = append(subcategories, toSubcategoryDomain(m))
	}

	return subcategories, nil
}

// ListSlugs retrieves the slugs already used inside a category.
func (repo *subcategoryRepository) ListSlugs(ctx context.Context, categoryID uuid.UUID, excludeID *uuid.UUID) ([]string, error) {
	s := repo.q.SubcategoryModel
	do := s.WithContext(ctx).Where(s.CategoryID.Eq(categoryID))
	if excludeID != nil {
		do = do.Where(s.ID.Neq(*excludeID))
	}

	var slugs []string
	if err := do.Pluck(s.Slug, &slugs); err != nil {
		return nil, errors.Wrap(err, "failed to list subcategory slugs")
	}

	return slugs, nil
}

// UpdateSubcategory writes every editable column, zero values included.
func (repo *subcategoryRepository) UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	s := repo.q.SubcategoryModel
	result, err := s.WithContext(ctx).
		Where(s.ID.Eq(subcategory.ID)).
		UpdateSimple(
			s.CategoryID.Value(subcategory.CategoryID),
			s.Name.Value(subcategory.Name),
			s.Slug.Value(subcategory.Slug),
			s.IsActive.Value(subcategory.IsActive),
			s.UpdatedAt.Value(subcategory.UpdatedAt),
		)
	if err != nil {
		return translateWriteError(err, domainerrors.ErrSubcategoryConflict, subcategory.Slug)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubcategoryNotFound
	}

	return nil
}

// DeleteSubcategory removes the subcategory row.
func (repo *subcategoryRepository) DeleteSubcategory(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := repo.q.SubcategoryModel.WithContext(ctx).
		Where(repo.q.SubcategoryModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete subcategory")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrSubcategoryNotFound
	}

	return result.RowsAffected, nil
}

// DeleteSubcategoriesByCategory removes every subcategory of a category.
func (repo *subcategoryRepository) DeleteSubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	result, err := repo.q.SubcategoryModel.WithContext(ctx).
		Where(repo.q.SubcategoryModel.CategoryID.Eq(categoryID)).
		Delete()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete subcategories by category")
	}

	return result.RowsAffected, nil
}
