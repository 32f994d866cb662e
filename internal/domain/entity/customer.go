package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a shop account. Orders, addresses, favorites and cart items hang off its ID;
// the newsletter subscription is linked by email only.
type Customer struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Notes     string // Admin-only free text.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address is a shipping or billing address of a customer.
type Address struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Label      string
	Street     string
	City       string
	PostalCode string
	Country    string
	CreatedAt  time.Time
}

// Favorite marks a product as a customer's favorite.
type Favorite struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}

// CartItem is a product waiting in a customer's cart.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	CreatedAt time.Time
}

// NewsletterSubscription is keyed by email, not by customer ID.
type NewsletterSubscription struct {
	ID           uuid.UUID
	Email        string
	SubscribedAt time.Time
}

// CustomerType is the derived commercial segment of a customer. It is never stored.
type CustomerType string

const (
	CustomerTypeNew       CustomerType = "new"
	CustomerTypeRecurring CustomerType = "recurring"
	CustomerTypeVIP       CustomerType = "vip"
)

// String returns the string representation of the CustomerType.
func (t CustomerType) String() string {
	return string(t)
}

// ClassificationThresholds are the VIP cut-offs.
type ClassificationThresholds struct {
	VIPOrderCount int
	VIPTotalSpent float64
}

// DefaultClassificationThresholds is 3 orders or 300 spent.
func DefaultClassificationThresholds() ClassificationThresholds {
	return ClassificationThresholds{
		VIPOrderCount: 3,
		VIPTotalSpent: 300,
	}
}

// ClassifyCustomer derives the segment. A customer without orders is always new,
// whatever the spend; otherwise either VIP threshold is enough.
func ClassifyCustomer(orderCount int, totalSpent float64, th ClassificationThresholds) CustomerType {
	switch {
	case orderCount == 0:
		return CustomerTypeNew
	case orderCount >= th.VIPOrderCount || totalSpent >= th.VIPTotalSpent:
		return CustomerTypeVIP
	default:
		return CustomerTypeRecurring
	}
}

// OrderTotals is the in-memory fold of a customer's orders.
type OrderTotals struct {
	OrderCount   int
	TotalSpent   float64
	LastPurchase *time.Time
}

// TotalsFromOrders folds orders into totals. LastPurchase is the maximum CreatedAt,
// independent of the order of the slice.
func TotalsFromOrders(orders []*Order) OrderTotals {
	var totals OrderTotals
	for _, o := range orders {
		if o == nil {
			continue
		}
		totals.OrderCount++
		totals.TotalSpent += o.TotalAmount
		if totals.LastPurchase == nil || o.CreatedAt.After(*totals.LastPurchase) {
			created := o.CreatedAt
			totals.LastPurchase = &created
		}
	}
	totals.TotalSpent = RoundCents(totals.TotalSpent)

	return totals
}

// CustomerSummary is a customer together with its derived commerce statistics.
type CustomerSummary struct {
	Customer
	OrderCount             int
	TotalSpent             float64
	LastPurchase           *time.Time // Most recent order; nil without orders.
	CustomerType           CustomerType
	IsNewsletterSubscribed bool
}

// NewCustomerSummary combines a customer with its totals and newsletter flag.
func NewCustomerSummary(c *Customer, totals OrderTotals, subscribed bool, th ClassificationThresholds) *CustomerSummary {
	return &CustomerSummary{
		Customer:               *c,
		OrderCount:             totals.OrderCount,
		TotalSpent:             totals.TotalSpent,
		LastPurchase:           totals.LastPurchase,
		CustomerType:           ClassifyCustomer(totals.OrderCount, totals.TotalSpent, th),
		IsNewsletterSubscribed: subscribed,
	}
}
