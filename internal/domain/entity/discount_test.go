package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountCodeStatus(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	limit := 5

	tests := []struct {
		name string
		code DiscountCode
		want DiscountStatus
	}{
		{name: "active without bounds", code: DiscountCode{IsActive: true}, want: DiscountStatusActive},
		{name: "inactive wins over everything", code: DiscountCode{IsActive: false, ValidUntil: &past, UsageLimit: &limit, UsageCount: 5}, want: DiscountStatusInactive},
		{name: "expired wins over scheduled", code: DiscountCode{IsActive: true, ValidFrom: &future, ValidUntil: &past}, want: DiscountStatusExpired},
		{name: "scheduled", code: DiscountCode{IsActive: true, ValidFrom: &future}, want: DiscountStatusScheduled},
		{name: "scheduled wins over exhausted", code: DiscountCode{IsActive: true, ValidFrom: &future, UsageLimit: &limit, UsageCount: 5}, want: DiscountStatusScheduled},
		{name: "exhausted", code: DiscountCode{IsActive: true, UsageLimit: &limit, UsageCount: 5}, want: DiscountStatusExhausted},
		{name: "within window", code: DiscountCode{IsActive: true, ValidFrom: &past, ValidUntil: &future, UsageLimit: &limit, UsageCount: 4}, want: DiscountStatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Status(now))
		})
	}
}

func TestDiscountCodeIsExpired(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	until := now

	assert.False(t, (&DiscountCode{}).IsExpired(now))
	assert.False(t, (&DiscountCode{ValidUntil: &until}).IsExpired(now), "valid_until equal to now is not expired")

	before := now.Add(-time.Second)
	assert.True(t, (&DiscountCode{ValidUntil: &before}).IsExpired(now))
}

func TestDiscountCodeAmount(t *testing.T) {
	tests := []struct {
		name  string
		code  DiscountCode
		total float64
		want  float64
	}{
		{name: "percentage", code: DiscountCode{DiscountType: DiscountTypePercentage, DiscountValue: 10}, total: 59.90, want: 5.99},
		{name: "fixed", code: DiscountCode{DiscountType: DiscountTypeFixed, DiscountValue: 15}, total: 80, want: 15},
		{name: "fixed capped at total", code: DiscountCode{DiscountType: DiscountTypeFixed, DiscountValue: 15}, total: 9.5, want: 9.5},
		{name: "zero total", code: DiscountCode{DiscountType: DiscountTypeFixed, DiscountValue: 15}, total: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.code.Amount(tt.total), 0.0001)
		})
	}
}
