package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// UpsertTaxRateInput is the input of UpsertTaxRate.
type UpsertTaxRateInput struct {
	CountryCode string
	Rate        float64
	Label       string
}

// UpdateSettingsInput is the input of UpdateSettings.
type UpdateSettingsInput struct {
	OSSEnabled            bool
	DefaultShippingCost   float64
	FreeShippingThreshold float64
}

// TaxUsecase defines the tax and shipping panel use cases.
type TaxUsecase interface {
	ListTaxRates(ctx context.Context) ([]*entity.TaxRate, error)
	UpsertTaxRate(ctx context.Context, input *UpsertTaxRateInput) (*entity.TaxRate, error)
	DeleteTaxRate(ctx context.Context, countryCode string) error

	// GetSettings returns the stored settings, or the defaults while none were saved.
	GetSettings(ctx context.Context) (*entity.ShopSettings, error)
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.ShopSettings, error)
}
