package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order panel.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdateStatusRequest is the body of PATCH /admin/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders handles GET /admin/orders with the optional customer_id and status filters.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	customerID, err := queryUUID(c, "customer_id")
	if err != nil {
		return err
	}

	filter := repository.OrderFilter{CustomerID: customerID}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		filter.Status = &status
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// UpdateStatus handles PATCH /admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Estado da encomenda atualizado")
}
