package model

import "time"

// TaxRateModel is the GORM-specific struct for the 'tax_rates' table.
type TaxRateModel struct {
	CountryCode string  `gorm:"type:char(2);primaryKey"`
	Rate        float64 `gorm:"type:numeric(5,2);not null"`
	Label       string  `gorm:"type:varchar(100);not null;default:''"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaxRateModel) TableName() string {
	return "tax_rates"
}

// ShopSettingsID is the primary key of the single settings row.
const ShopSettingsID = 1

// ShopSettingsModel is the GORM-specific struct for the 'shop_settings' table.
type ShopSettingsModel struct {
	ID                    int     `gorm:"primaryKey;autoIncrement:false"`
	OSSEnabled            bool    `gorm:"column:oss_enabled;not null;default:false"`
	DefaultShippingCost   float64 `gorm:"type:numeric(10,2);not null"`
	FreeShippingThreshold float64 `gorm:"type:numeric(10,2);not null"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopSettingsModel) TableName() string {
	return "shop_settings"
}
