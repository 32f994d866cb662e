package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_categories_name"`
	Slug         string    `gorm:"type:varchar(140);not null;uniqueIndex:idx_categories_slug"`
	DisplayOrder int       `gorm:"not null;default:0"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubcategoryModel is the GORM-specific struct for the 'subcategories' table.
// The slug is unique per category.
type SubcategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subcategories_category_slug,priority:1"`
	Name       string    `gorm:"type:varchar(120);not null"`
	Slug       string    `gorm:"type:varchar(140);not null;uniqueIndex:idx_subcategories_category_slug,priority:2"`
	IsActive   bool      `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubcategoryModel) TableName() string {
	return "subcategories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index:idx_products_category"`
	SubcategoryID *uuid.UUID `gorm:"type:uuid;index:idx_products_subcategory"`
	Name          string     `gorm:"type:varchar(200);not null"`
	Price         float64    `gorm:"type:numeric(10,2);not null"`
	IsActive      bool       `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
