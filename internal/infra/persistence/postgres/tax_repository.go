package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"
	"backoffice/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// taxRepository implements the domain.TaxRepository interface.
type taxRepository struct {
	q *query.Query
}

// NewTaxRepository is the constructor for taxRepository.
func NewTaxRepository(db *gorm.DB) repository.TaxRepository {
	return &taxRepository{
		q: query.Use(db),
	}
}

// ListTaxRates retrieves every rate ordered by country.
func (repo *taxRepository) ListTaxRates(ctx context.Context) ([]*entity.TaxRate, error) {
	rateModels, err := repo.q.TaxRateModel.WithContext(ctx).
		Order(repo.q.TaxRateModel.CountryCode.Asc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tax rates")
	}

	rates := make([]*entity.TaxRate, 0, len(rateModels))
	for _, m := range rateModels {
		rates = append(rates, &entity.TaxRate{
			CountryCode: m.CountryCode,
			Rate:        m.Rate,
			Label:       m.Label,
			UpdatedAt:   m.UpdatedAt,
		})
	}

	return rates, nil
}

// UpsertTaxRate inserts the rate or overwrites the existing one of the same country.
func (repo *taxRepository) UpsertTaxRate(ctx context.Context, rate *entity.TaxRate) error {
	if rate.UpdatedAt.IsZero() {
		rate.UpdatedAt = time.Now().UTC()
	}
	rateM := &model.TaxRateModel{
		CountryCode: rate.CountryCode,
		Rate:        rate.Rate,
		Label:       rate.Label,
		UpdatedAt:   rate.UpdatedAt,
	}

	err := repo.q.TaxRateModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "country_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"rate", "label", "updated_at"}),
		}).
		Create(rateM)
	if err != nil {
		return translateWriteError(err, nil, "failed to upsert tax rate")
	}

	return nil
}

// DeleteTaxRate removes the rate of a country.
func (repo *taxRepository) DeleteTaxRate(ctx context.Context, countryCode string) error {
	result, err := repo.q.TaxRateModel.WithContext(ctx).
		Where(repo.q.TaxRateModel.CountryCode.Eq(countryCode)).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete tax rate")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaxRateNotFound
	}

	return nil
}

// GetSettings retrieves the singleton settings row.
func (repo *taxRepository) GetSettings(ctx context.Context) (*entity.ShopSettings, error) {
	settingsM, err := repo.q.ShopSettingsModel.WithContext(ctx).
		Where(repo.q.ShopSettingsModel.ID.Eq(model.ShopSettingsID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get shop settings")
	}

	return &entity.ShopSettings{
		OSSEnabled:            settingsM.OSSEnabled,
		DefaultShippingCost:   settingsM.DefaultShippingCost,
		FreeShippingThreshold: settingsM.FreeShippingThreshold,
		UpdatedAt:             settingsM.UpdatedAt,
	}, nil
}

// UpsertSettings writes the singleton settings row.
func (repo *taxRepository) UpsertSettings(ctx context.Context, settings *entity.ShopSettings) error {
	if settings.UpdatedAt.IsZero() {
		settings.UpdatedAt = time.Now().UTC()
	}
	settingsM := &model.ShopSettingsModel{
		ID:                    model.ShopSettingsID,
		OSSEnabled:            settings.OSSEnabled,
		DefaultShippingCost:   settings.DefaultShippingCost,
		FreeShippingThreshold: settings.FreeShippingThreshold,
		UpdatedAt:             settings.UpdatedAt,
	}

	err := repo.q.ShopSettingsModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"oss_enabled", "default_shipping_cost", "free_shipping_threshold", "updated_at"}),
		}).
		Create(settingsM)
	if err != nil {
		return translateWriteError(err, nil, "failed to upsert shop settings")
	}

	return nil
}
