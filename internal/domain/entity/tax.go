package entity

import "time"

// TaxRate is the VAT rate applied to shipments into a country.
type TaxRate struct {
	CountryCode string // ISO 3166-1 alpha-2, uppercased. Unique.
	Rate        float64
	Label       string
	UpdatedAt   time.Time
}

// ShopSettings is the single row of shop-wide tax and shipping settings.
type ShopSettings struct {
	OSSEnabled            bool // EU One Stop Shop flag. Toggled only.
	DefaultShippingCost   float64
	FreeShippingThreshold float64
	UpdatedAt             time.Time
}

// DefaultShopSettings is returned while no settings row exists.
func DefaultShopSettings() *ShopSettings {
	return &ShopSettings{
		OSSEnabled:            false,
		DefaultShippingCost:   4.95,
		FreeShippingThreshold: 50,
	}
}
