package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTaxService(env *testEnv) *taxService {
	return NewTaxService(TaxServiceParams{
		Repos:     env.repos,
		Publisher: env.publisher,
		Logger:    env.logger,
	}).(*taxService)
}

func TestTaxService_TaxRates(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestTaxService(env)
	ctx := context.Background()

	rate, err := srv.UpsertTaxRate(ctx, &usecase.UpsertTaxRateInput{CountryCode: "pt", Rate: 23, Label: "IVA normal"})
	require.NoError(t, err)
	assert.Equal(t, "PT", rate.CountryCode)

	_, err = srv.UpsertTaxRate(ctx, &usecase.UpsertTaxRateInput{CountryCode: "PT", Rate: 22, Label: "IVA Madeira"})
	require.NoError(t, err)
	_, err = srv.UpsertTaxRate(ctx, &usecase.UpsertTaxRateInput{CountryCode: "ES", Rate: 21})
	require.NoError(t, err)

	rates, err := srv.ListTaxRates(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "ES", rates[0].CountryCode)
	assert.Equal(t, "PT", rates[1].CountryCode)
	assert.InDelta(t, 22.0, rates[1].Rate, 0.001)
	assert.Equal(t, "IVA Madeira", rates[1].Label)

	invalid := []*usecase.UpsertTaxRateInput{
		{CountryCode: "XX", Rate: 10},
		{CountryCode: "PRT", Rate: 10},
		{CountryCode: "FR", Rate: -1},
		{CountryCode: "FR", Rate: 101},
	}
	for _, input := range invalid {
		_, err := srv.UpsertTaxRate(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "%+v", input)
	}

	require.NoError(t, srv.DeleteTaxRate(ctx, "es"))
	assert.ErrorIs(t, srv.DeleteTaxRate(ctx, "ES"), domainerrors.ErrTaxRateNotFound)
}

func TestTaxService_Settings(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestTaxService(env)
	ctx := context.Background()

	settings, err := srv.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultShopSettings(), settings)

	updated, err := srv.UpdateSettings(ctx, &usecase.UpdateSettingsInput{OSSEnabled: true, DefaultShippingCost: 3.5, FreeShippingThreshold: 40})
	require.NoError(t, err)
	assert.True(t, updated.OSSEnabled)

	_, err = srv.UpdateSettings(ctx, &usecase.UpdateSettingsInput{OSSEnabled: false, DefaultShippingCost: 3.5, FreeShippingThreshold: 40})
	require.NoError(t, err)

	settings, err = srv.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.OSSEnabled)
	assert.InDelta(t, 3.5, settings.DefaultShippingCost, 0.001)
	assert.InDelta(t, 40.0, settings.FreeShippingThreshold, 0.001)

	_, err = srv.UpdateSettings(ctx, &usecase.UpdateSettingsInput{DefaultShippingCost: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
