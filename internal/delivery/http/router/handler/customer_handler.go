package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves the customer panel.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CreateCustomerRequest is the body of POST /admin/customers.
type CreateCustomerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"max=200"`
	Notes    string `json:"notes" validate:"max=2000"`
}

// UpdateNotesRequest is the body of PATCH /admin/customers/:id/notes.
type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// BulkDeleteRequest is the body of POST /admin/customers/bulk-delete.
type BulkDeleteRequest struct {
	IDs  []uuid.UUID `json:"ids" validate:"required,min=1"`
	Mode string      `json:"mode" validate:"omitempty,oneof=all_or_nothing best_effort"`
}

// NewsletterRequest is the body of PUT /admin/newsletter.
type NewsletterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Subscribed bool   `json:"subscribed"`
}

// ListCustomers returns every customer with its derived statistics.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	summaries, err := h.customerUC.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*CustomerView, 0, len(summaries))
	for _, s := range summaries {
		views = append(views, toCustomerView(s))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetCustomer handles GET /admin/customers/:id.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerView(summary), "")
}

// CreateCustomer handles POST /admin/customers.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), &usecase.CreateCustomerInput{
		Email:    req.Email,
		FullName: req.FullName,
		Notes:    req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := toCustomerView(&entity.CustomerSummary{Customer: *customer, CustomerType: entity.CustomerTypeNew})

	return response.Success(c, http.StatusCreated, view, "Cliente criado")
}

// UpdateNotes handles PATCH /admin/customers/:id/notes.
func (h *CustomerHandler) UpdateNotes(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateNotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.customerUC.UpdateCustomerNotes(c.Request().Context(), id, req.Notes); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notas atualizadas")
}

// DeleteCustomer removes a customer with every dependent row.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	report, err := h.customerUC.DeleteCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDeleteReportView(report), "Cliente eliminado")
}

// BulkDelete handles POST /admin/customers/bulk-delete. An omitted mode uses the configured default.
func (h *CustomerHandler) BulkDelete(c echo.Context) error {
	var req BulkDeleteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.customerUC.DeleteCustomers(c.Request().Context(), req.IDs, entity.BulkDeleteMode(req.Mode))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBulkDeleteView(result), "Clientes eliminados")
}

// SetNewsletter handles PUT /admin/newsletter.
func (h *CustomerHandler) SetNewsletter(c echo.Context) error {
	var req NewsletterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.customerUC.SetNewsletter(c.Request().Context(), req.Email, req.Subscribed); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Newsletter atualizada")
}
