package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/config"
	adminhttp "backoffice/internal/delivery/http"
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router"
	"backoffice/internal/delivery/http/router/handler"
	"backoffice/internal/domain/entity"
	"backoffice/internal/infra/auth"
	"backoffice/internal/infra/persistence/postgres"
	"backoffice/internal/infra/persistence/sqlitetest"
	"backoffice/internal/infra/pubsub"
	"backoffice/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type apiHarness struct {
	echo        *echo.Echo
	adminToken  string
	viewerToken string
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test-access-secret"},
		Admin: &config.AdminConfig{
			BulkDeleteMode:    string(entity.BulkDeleteBestEffort),
			MaxBulkDelete:     10,
			VIPOrderThreshold: 3,
			VIPSpendThreshold: 300,
		},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.DiscardHandler)

	db := sqlitetest.Open(t)
	repos := postgres.NewRepositoryFactory(db)
	txManager := postgres.NewTransactionManager(db)

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: logger,
	})
	require.NoError(t, err)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	deleter := impl.NewCascadingDeleter(impl.CascadingDeleterParams{
		TxManager: txManager, Publisher: publisher, Config: cfg, Logger: logger,
	})

	r := router.NewRouter(router.RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: impl.NewCatalogService(impl.CatalogServiceParams{
				TxManager: txManager, Repos: repos, Deleter: deleter, Publisher: publisher, Logger: logger,
			}),
			Logger: logger,
		}),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{
			CustomerUC: impl.NewCustomerService(impl.CustomerServiceParams{
				Repos:      repos,
				Aggregator: impl.NewCustomerAggregator(repos, cfg),
				Deleter:    deleter,
				Publisher:  publisher,
				Config:     cfg,
				Logger:     logger,
			}),
			Logger: logger,
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: impl.NewOrderService(impl.OrderServiceParams{Repos: repos, Publisher: publisher, Logger: logger}),
			Logger:  logger,
		}),
		DiscountHandler: handler.NewDiscountHandler(handler.DiscountHandlerParams{
			DiscountUC: impl.NewDiscountService(impl.DiscountServiceParams{
				TxManager: txManager, Repos: repos, Publisher: publisher, Logger: logger,
			}),
			Logger: logger,
		}),
		TaxHandler: handler.NewTaxHandler(handler.TaxHandlerParams{
			TaxUC:  impl.NewTaxService(impl.TaxServiceParams{Repos: repos, Publisher: publisher, Logger: logger}),
			Logger: logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc, logger),
	})

	adminToken, err := tokenSvc.GenerateAccessToken("ops@example.com", []string{entity.RoleAdmin.String()})
	require.NoError(t, err)
	viewerToken, err := tokenSvc.GenerateAccessToken("intern@example.com", []string{entity.RoleViewer.String()})
	require.NoError(t, err)

	return &apiHarness{
		echo:        adminhttp.NewEcho(cfg, logger, r),
		adminToken:  adminToken,
		viewerToken: viewerToken,
	}
}

func (h *apiHarness) do(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestHealthIsOpen(t *testing.T) {
	h := newAPIHarness(t)

	rec, env := h.do(t, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	h := newAPIHarness(t)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "viewer role", header: "Bearer " + h.viewerToken, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			h.echo.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestCategoryEndpoints(t *testing.T) {
	h := newAPIHarness(t)

	rec, env := h.do(t, http.MethodPost, "/admin/categories", map[string]any{"name": "Vestidos de Verão"}, h.adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	category := decodeData[handler.CategoryView](t, env)
	assert.Equal(t, "vestidos-de-verao", category.Slug)
	assert.True(t, category.IsActive)

	rec, env = h.do(t, http.MethodPost, "/admin/categories", map[string]any{"name": "Vestidos de Verão"}, h.adminToken)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CATEGORY_CONFLICT", env.Error.Code)

	path := "/admin/categories/" + category.ID.String() + "/subcategories"
	rec, _ = h.do(t, http.MethodPost, path, map[string]any{"name": "Midi"}, h.adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = h.do(t, http.MethodGet, "/admin/catalog", nil, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	trees := decodeData[[]handler.CategoryTreeView](t, env)
	require.Len(t, trees, 1)
	require.Len(t, trees[0].Subcategories, 1)
	assert.Equal(t, "midi", trees[0].Subcategories[0].Slug)

	rec, env = h.do(t, http.MethodDelete, "/admin/categories/"+category.ID.String(), nil, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decodeData[handler.DeleteReportView](t, env)
	assert.Equal(t, "category", report.Kind)
	assert.NotEmpty(t, report.Steps)
}

func TestInvalidPathID(t *testing.T) {
	h := newAPIHarness(t)

	rec, env := h.do(t, http.MethodGet, "/admin/customers/not-a-uuid", nil, h.adminToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestCustomerEndpoints(t *testing.T) {
	h := newAPIHarness(t)

	t.Run("invalid email is rejected by the validator", func(t *testing.T) {
		rec, env := h.do(t, http.MethodPost, "/admin/customers", map[string]any{"email": "nope"}, h.adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email (email)")
	})

	rec, env := h.do(t, http.MethodPost, "/admin/customers",
		map[string]any{"email": "Ana@Example.com", "full_name": "Ana Silva"}, h.adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData[handler.CustomerView](t, env)
	assert.Equal(t, "ana@example.com", created.Email)

	rec, env = h.do(t, http.MethodGet, "/admin/customers/"+created.ID.String(), nil, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeData[handler.CustomerView](t, env)
	assert.Equal(t, "new", summary.CustomerType)
	assert.Zero(t, summary.OrderCount)
	assert.Nil(t, summary.LastPurchase)

	rec, _ = h.do(t, http.MethodPut, "/admin/newsletter",
		map[string]any{"email": "ana@example.com", "subscribed": true}, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = h.do(t, http.MethodGet, "/admin/customers", nil, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[[]handler.CustomerView](t, env)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsNewsletterSubscribed)

	rec, env = h.do(t, http.MethodPost, "/admin/customers/bulk-delete",
		map[string]any{"ids": []string{created.ID.String()}, "mode": "sometimes"}, h.adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)

	rec, env = h.do(t, http.MethodDelete, "/admin/customers/"+created.ID.String(), nil, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decodeData[handler.DeleteReportView](t, env)
	assert.Equal(t, "customer", report.Kind)

	rec, env = h.do(t, http.MethodGet, "/admin/customers/"+created.ID.String(), nil, h.adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", env.Error.Code)
}

func TestDiscountEndpoints(t *testing.T) {
	h := newAPIHarness(t)

	rec, env := h.do(t, http.MethodPost, "/admin/discount-codes", map[string]any{
		"code":           "verao10",
		"discount_type":  "percentage",
		"discount_value": 10,
		"usage_limit":    1,
	}, h.adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	code := decodeData[handler.DiscountCodeView](t, env)
	assert.Equal(t, "VERAO10", code.Code)
	assert.Equal(t, "active", code.Status)

	rec, env = h.do(t, http.MethodPost, "/admin/discount-codes/apply",
		map[string]any{"code": "verao10", "order_total": 80}, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	applied := decodeData[handler.ApplyDiscountResponse](t, env)
	assert.InDelta(t, 8.0, applied.Discount, 0.001)
	assert.InDelta(t, 72.0, applied.FinalTotal, 0.001)

	rec, env = h.do(t, http.MethodPost, "/admin/discount-codes/apply",
		map[string]any{"code": "verao10", "order_total": 80}, h.adminToken)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DISCOUNT_CODE_UNAVAILABLE", env.Error.Code)

	rec, _ = h.do(t, http.MethodDelete, "/admin/discount-codes/"+code.ID.String(), nil, h.adminToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	h := newAPIHarness(t)

	rec, env := h.do(t, http.MethodGet, "/admin/settings", nil, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	defaults := decodeData[handler.SettingsView](t, env)
	assert.InDelta(t, 4.95, defaults.DefaultShippingCost, 0.001)
	assert.False(t, defaults.OSSEnabled)

	rec, env = h.do(t, http.MethodPut, "/admin/settings", map[string]any{
		"oss_enabled":             true,
		"default_shipping_cost":   3.5,
		"free_shipping_threshold": 60,
	}, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	saved := decodeData[handler.SettingsView](t, env)
	assert.True(t, saved.OSSEnabled)

	rec, env = h.do(t, http.MethodPut, "/admin/tax-rates",
		map[string]any{"country_code": "pt", "rate": 23, "label": "IVA normal"}, h.adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rate := decodeData[handler.TaxRateView](t, env)
	assert.Equal(t, "PT", rate.CountryCode)

	rec, _ = h.do(t, http.MethodDelete, "/admin/tax-rates/PT", nil, h.adminToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
