package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a top-level storefront grouping. It owns subcategories and products.
type Category struct {
	ID           uuid.UUID
	Name         string
	Slug         string // Derived from Name.
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subcategory belongs to exactly one Category. Its Slug is unique within that category.
type Subcategory struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Slug       string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Product references a category and/or a subcategory. Both references are optional.
type Product struct {
	ID            uuid.UUID
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Name          string
	Price         float64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CategoryTree is a category together with its subcategories, as shown in the catalog panel.
type CategoryTree struct {
	Category      *Category
	Subcategories []*Subcategory
}
