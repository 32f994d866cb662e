// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrSubcategoryNotFound is returned when a subcategory is not found.
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListCategories returns categories ordered by display order, then name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes the category row only. Returns ErrCategoryNotFound if nothing was deleted.
	DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error)
}

// SubcategoryRepository defines subcategory persistence.
type SubcategoryRepository interface {
	CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error
	FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error)

	// ListSubcategories returns every subcategory, or only those of categoryID when set.
	ListSubcategories(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Subcategory, error)

	// ListSlugs returns the slugs used under a category, skipping excludeID when set.
	ListSlugs(ctx context.Context, categoryID uuid.UUID, excludeID *uuid.UUID) ([]string, error)
	UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error
	DeleteSubcategory(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteSubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// ProductFilter narrows ListProducts. Nil fields are ignored.
type ProductFilter struct {
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
}

// ProductRepository defines product persistence.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// DeleteProductsByCategory removes products referencing the category directly or
	// through one of its subcategories.
	DeleteProductsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	DeleteProductsBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error)
}
