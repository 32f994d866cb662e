package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_email"`
	FullName  string    `gorm:"type:varchar(200);not null;default:''"`
	Notes     string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"index:idx_customers_created_at"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_user"`
	Label      string    `gorm:"type:varchar(100);not null;default:''"`
	Street     string    `gorm:"type:text;not null"`
	City       string    `gorm:"type:varchar(120);not null"`
	PostalCode string    `gorm:"type:varchar(20);not null"`
	Country    string    `gorm:"type:char(2);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product,priority:2"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_items_user"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// NewsletterSubscriptionModel is the GORM-specific struct for the 'newsletter_subscriptions' table.
// It is linked to customers by email only.
type NewsletterSubscriptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_newsletter_email"`
	SubscribedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}
