package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"
)

var (
	// ErrTaxRateNotFound is returned when no rate exists for a country.
	ErrTaxRateNotFound = errors.New("tax rate not found")
	// ErrSettingsNotFound is returned while the settings row has never been written.
	ErrSettingsNotFound = errors.New("shop settings not found")
)

// TaxRepository defines tax rate and shop settings persistence.
type TaxRepository interface {
	ListTaxRates(ctx context.Context) ([]*entity.TaxRate, error)

	// UpsertTaxRate inserts or replaces the rate of rate.CountryCode.
	UpsertTaxRate(ctx context.Context, rate *entity.TaxRate) error
	DeleteTaxRate(ctx context.Context, countryCode string) error
	GetSettings(ctx context.Context) (*entity.ShopSettings, error)
	UpsertSettings(ctx context.Context, settings *entity.ShopSettings) error
}
