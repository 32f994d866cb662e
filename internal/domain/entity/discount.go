package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DiscountType tells how DiscountValue is applied.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// String returns the string representation of the DiscountType.
func (t DiscountType) String() string {
	return string(t)
}

// IsValid checks if the DiscountType is a valid value.
func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountTypePercentage, DiscountTypeFixed:
		return true
	default:
		return false
	}
}

// DiscountStatus is derived on read from the flags, counters and validity window.
type DiscountStatus string

const (
	DiscountStatusActive    DiscountStatus = "active"
	DiscountStatusInactive  DiscountStatus = "inactive"
	DiscountStatusExpired   DiscountStatus = "expired"
	DiscountStatusScheduled DiscountStatus = "scheduled"
	DiscountStatusExhausted DiscountStatus = "exhausted"
)

// DiscountCode is a marketing code. Code is unique and stored uppercased.
type DiscountCode struct {
	ID            uuid.UUID
	Code          string
	DiscountType  DiscountType
	DiscountValue float64
	UsageCount    int
	UsageLimit    *int
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsExpired reports valid_until < now. Codes without an end date never expire.
func (d *DiscountCode) IsExpired(now time.Time) bool {
	return d.ValidUntil != nil && d.ValidUntil.Before(now)
}

// Status evaluates the code lazily at now.
func (d *DiscountCode) Status(now time.Time) DiscountStatus {
	switch {
	case !d.IsActive:
		return DiscountStatusInactive
	case d.IsExpired(now):
		return DiscountStatusExpired
	case d.ValidFrom != nil && d.ValidFrom.After(now):
		return DiscountStatusScheduled
	case d.UsageLimit != nil && d.UsageCount >= *d.UsageLimit:
		return DiscountStatusExhausted
	default:
		return DiscountStatusActive
	}
}

// Amount is the discount granted on orderTotal, never more than the total itself.
func (d *DiscountCode) Amount(orderTotal float64) float64 {
	if orderTotal <= 0 {
		return 0
	}

	var amount float64
	switch d.DiscountType {
	case DiscountTypePercentage:
		amount = orderTotal * d.DiscountValue / 100
	case DiscountTypeFixed:
		amount = d.DiscountValue
	}

	return RoundCents(math.Min(amount, orderTotal))
}
