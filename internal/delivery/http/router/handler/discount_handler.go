package handler

import (
	"log/slog"
	"net/http"
	"time"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
	Logger     *slog.Logger
}

// DiscountHandler serves the discount code panel.
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
	logger     *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler.
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{
		discountUC: params.DiscountUC,
		logger:     params.Logger,
	}
}

// CreateDiscountCodeRequest is the body of POST /admin/discount-codes.
type CreateDiscountCodeRequest struct {
	Code          string     `json:"code" validate:"required"`
	DiscountType  string     `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64    `json:"discount_value" validate:"gt=0"`
	UsageLimit    *int       `json:"usage_limit" validate:"omitempty,gte=1"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidUntil    *time.Time `json:"valid_until"`
	IsActive      *bool      `json:"is_active"`
}

// SetActiveRequest is the body of PATCH /admin/discount-codes/:id/active.
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// ApplyDiscountRequest is the body of POST /admin/discount-codes/apply.
type ApplyDiscountRequest struct {
	Code       string  `json:"code" validate:"required"`
	OrderTotal float64 `json:"order_total" validate:"gte=0"`
}

// ApplyDiscountResponse is the data returned when a code is redeemed.
type ApplyDiscountResponse struct {
	Code       string  `json:"code"`
	Discount   float64 `json:"discount"`
	FinalTotal float64 `json:"final_total"`
}

// ListDiscountCodes returns every code with its status evaluated now.
func (h *DiscountHandler) ListDiscountCodes(c echo.Context) error {
	codes, err := h.discountUC.ListDiscountCodes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*DiscountCodeView, 0, len(codes))
	for _, code := range codes {
		views = append(views, toDiscountCodeView(code))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// CreateDiscountCode handles POST /admin/discount-codes.
func (h *DiscountHandler) CreateDiscountCode(c echo.Context) error {
	var req CreateDiscountCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	code, err := h.discountUC.CreateDiscountCode(c.Request().Context(), &usecase.CreateDiscountCodeInput{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		UsageLimit:    req.UsageLimit,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		IsActive:      activeOrDefault(req.IsActive),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDiscountCodeView(code), "Código de desconto criado")
}

// SetActive handles PATCH /admin/discount-codes/:id/active.
func (h *DiscountHandler) SetActive(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req SetActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.discountUC.SetDiscountCodeActive(c.Request().Context(), id, req.IsActive); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Código de desconto atualizado")
}

// DeleteDiscountCode handles DELETE /admin/discount-codes/:id.
func (h *DiscountHandler) DeleteDiscountCode(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.discountUC.DeleteDiscountCode(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ApplyDiscountCode handles POST /admin/discount-codes/apply.
func (h *DiscountHandler) ApplyDiscountCode(c echo.Context) error {
	var req ApplyDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.discountUC.ApplyDiscountCode(c.Request().Context(), req.Code, req.OrderTotal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ApplyDiscountResponse{
		Code:       out.Code,
		Discount:   out.Discount,
		FinalTotal: out.FinalTotal,
	}, "Desconto aplicado")
}
