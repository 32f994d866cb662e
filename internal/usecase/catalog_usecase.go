package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateCategoryInput is the input of CreateCategory.
type CreateCategoryInput struct {
	Name         string
	DisplayOrder int
	IsActive     bool
}

// UpdateCategoryInput is the input of UpdateCategory.
type UpdateCategoryInput struct {
	ID           uuid.UUID
	Name         string
	DisplayOrder int
	IsActive     bool
}

// CreateSubcategoryInput is the input of CreateSubcategory.
type CreateSubcategoryInput struct {
	CategoryID uuid.UUID
	Name       string
	IsActive   bool
}

// UpdateSubcategoryInput is the input of UpdateSubcategory.
type UpdateSubcategoryInput struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

// CreateProductInput is the input of CreateProduct. At least one of the references is expected.
type CreateProductInput struct {
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Name          string
	Price         float64
	IsActive      bool
}

// CatalogUsecase defines the catalog panel use cases.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// LoadCatalog returns every category with its subcategories.
	LoadCatalog(ctx context.Context) ([]*entity.CategoryTree, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (*entity.DeleteReport, error)

	// CreateSubcategory derives a slug that is unique within the parent category.
	CreateSubcategory(ctx context.Context, input *CreateSubcategoryInput) (*entity.Subcategory, error)
	UpdateSubcategory(ctx context.Context, input *UpdateSubcategoryInput) (*entity.Subcategory, error)
	ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id uuid.UUID) (*entity.DeleteReport, error)

	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)
}
