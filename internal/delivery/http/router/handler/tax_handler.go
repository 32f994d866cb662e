package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaxHandlerParams holds dependencies for TaxHandler, injected by Fx.
type TaxHandlerParams struct {
	fx.In

	TaxUC  usecase.TaxUsecase
	Logger *slog.Logger
}

// TaxHandler serves tax rates and the shop settings.
type TaxHandler struct {
	taxUC  usecase.TaxUsecase
	logger *slog.Logger
}

// NewTaxHandler is the constructor for TaxHandler.
func NewTaxHandler(params TaxHandlerParams) *TaxHandler {
	return &TaxHandler{
		taxUC:  params.TaxUC,
		logger: params.Logger,
	}
}

// UpsertTaxRateRequest is the body of PUT /admin/tax-rates.
type UpsertTaxRateRequest struct {
	CountryCode string  `json:"country_code" validate:"required,len=2"`
	Rate        float64 `json:"rate" validate:"gte=0,lte=100"`
	Label       string  `json:"label" validate:"max=120"`
}

// SettingsRequest is the body of PUT /admin/settings.
type SettingsRequest struct {
	OSSEnabled            bool    `json:"oss_enabled"`
	DefaultShippingCost   float64 `json:"default_shipping_cost" validate:"gte=0"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold" validate:"gte=0"`
}

// ListTaxRates handles GET /admin/tax-rates.
func (h *TaxHandler) ListTaxRates(c echo.Context) error {
	rates, err := h.taxUC.ListTaxRates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*TaxRateView, 0, len(rates))
	for _, r := range rates {
		views = append(views, toTaxRateView(r))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// UpsertTaxRate creates or replaces the rate of a country.
func (h *TaxHandler) UpsertTaxRate(c echo.Context) error {
	var req UpsertTaxRateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rate, err := h.taxUC.UpsertTaxRate(c.Request().Context(), &usecase.UpsertTaxRateInput{
		CountryCode: req.CountryCode,
		Rate:        req.Rate,
		Label:       req.Label,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaxRateView(rate), "Taxa de IVA guardada")
}

// DeleteTaxRate handles DELETE /admin/tax-rates/:country.
func (h *TaxHandler) DeleteTaxRate(c echo.Context) error {
	if err := h.taxUC.DeleteTaxRate(c.Request().Context(), c.Param("country")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// GetSettings handles GET /admin/settings.
func (h *TaxHandler) GetSettings(c echo.Context) error {
	settings, err := h.taxUC.GetSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsView(settings), "")
}

// UpdateSettings handles PUT /admin/settings.
func (h *TaxHandler) UpdateSettings(c echo.Context) error {
	var req SettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	settings, err := h.taxUC.UpdateSettings(c.Request().Context(), &usecase.UpdateSettingsInput{
		OSSEnabled:            req.OSSEnabled,
		DefaultShippingCost:   req.DefaultShippingCost,
		FreeShippingThreshold: req.FreeShippingThreshold,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsView(settings), "Definições guardadas")
}
