package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"go.uber.org/fx"
)

// taxService implements the TaxUsecase interface.
type taxService struct {
	repos    repository.RepositoryFactory
	notifier *changeNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// TaxServiceParams holds dependencies for TaxService, injected by Fx.
type TaxServiceParams struct {
	fx.In

	Repos     repository.RepositoryFactory
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewTaxService is the constructor for taxService.
func NewTaxService(params TaxServiceParams) usecase.TaxUsecase {
	return &taxService{
		repos:    params.Repos,
		notifier: newChangeNotifier(params.Publisher, params.Logger),
		logger:   params.Logger,
		now:      time.Now,
	}
}

// ListTaxRates returns the rates ordered by country.
func (srv *taxService) ListTaxRates(ctx context.Context) ([]*entity.TaxRate, error) {
	rates, err := srv.repos.NewTaxRepository().ListTaxRates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tax rates")
	}

	return rates, nil
}

// UpsertTaxRate sets the rate of a country, replacing any previous one.
func (srv *taxService) UpsertTaxRate(ctx context.Context, input *usecase.UpsertTaxRateInput) (*entity.TaxRate, error) {
	country, err := normalizeCountry(input.CountryCode)
	if err != nil {
		return nil, err
	}
	if input.Rate < 0 || input.Rate > 100 {
		return nil, domainerrors.NewValidationError("a taxa tem de estar entre 0 e 100")
	}

	rate := &entity.TaxRate{
		CountryCode: country,
		Rate:        entity.RoundCents(input.Rate),
		Label:       strings.TrimSpace(input.Label),
		UpdatedAt:   srv.now().UTC(),
	}
	if err := srv.repos.NewTaxRepository().UpsertTaxRate(ctx, rate); err != nil {
		return nil, errors.WithMessage(err, "failed to save tax rate")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Tax rate saved",
		slog.String("country", country),
		slog.Float64("rate", rate.Rate),
	)
	srv.notifier.notify(ctx, tableTaxRates, service.ChangeActionUpdated, country)

	return rate, nil
}

// DeleteTaxRate removes the rate of a country.
func (srv *taxService) DeleteTaxRate(ctx context.Context, countryCode string) error {
	country, err := normalizeCountry(countryCode)
	if err != nil {
		return err
	}

	if err := srv.repos.NewTaxRepository().DeleteTaxRate(ctx, country); err != nil {
		return mapNotFound(err, repository.ErrTaxRateNotFound, domainerrors.ErrTaxRateNotFound, "failed to delete tax rate")
	}

	srv.notifier.notify(ctx, tableTaxRates, service.ChangeActionDeleted, country)

	return nil
}

// GetSettings returns the stored settings or the defaults.
func (srv *taxService) GetSettings(ctx context.Context) (*entity.ShopSettings, error) {
	settings, err := srv.repos.NewTaxRepository().GetSettings(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return entity.DefaultShopSettings(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get shop settings")
	}

	return settings, nil
}

// UpdateSettings replaces the shop settings.
func (srv *taxService) UpdateSettings(ctx context.Context, input *usecase.UpdateSettingsInput) (*entity.ShopSettings, error) {
	if input.DefaultShippingCost < 0 || input.FreeShippingThreshold < 0 {
		return nil, domainerrors.NewValidationError("os valores de envio não podem ser negativos")
	}

	settings := &entity.ShopSettings{
		OSSEnabled:            input.OSSEnabled,
		DefaultShippingCost:   entity.RoundCents(input.DefaultShippingCost),
		FreeShippingThreshold: entity.RoundCents(input.FreeShippingThreshold),
		UpdatedAt:             srv.now().UTC(),
	}
	if err := srv.repos.NewTaxRepository().UpsertSettings(ctx, settings); err != nil {
		return nil, errors.WithMessage(err, "failed to save shop settings")
	}

	srv.notifier.notify(ctx, tableShopSettings, service.ChangeActionUpdated)

	return settings, nil
}

// normalizeCountry uppercases a country code and checks it is ISO 3166-1 alpha-2.
func normalizeCountry(raw string) (string, error) {
	country := strings.ToUpper(strings.TrimSpace(raw))
	if err := inputValidator.Var(country, "required,iso3166_1_alpha2"); err != nil {
		return "", domainerrors.NewValidationError("código de país inválido: " + raw)
	}

	return country, nil
}
