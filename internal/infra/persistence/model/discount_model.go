package model

import (
	"time"

	"github.com/google/uuid"
)

// DiscountCodeModel is the GORM-specific struct for the 'discount_codes' table.
type DiscountCodeModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code          string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_discount_codes_code"`
	DiscountType  string     `gorm:"type:varchar(20);not null"`
	DiscountValue float64    `gorm:"type:numeric(10,2);not null"`
	UsageCount    int        `gorm:"not null;default:0"`
	UsageLimit    *int
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	IsActive      bool       `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountCodeModel) TableName() string {
	return "discount_codes"
}
