package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Keys set on echo.Context by Authenticate.
const (
	ContextKeyOperator = "operator"
	ContextKeyRoles    = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and records its subject and roles.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("cabeçalho Authorization em falta")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("o token tem de ser do tipo Bearer")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized
		}
		if claims.Subject == "" {
			return domainerrors.ErrUnauthorized.WithDetails("token sem sujeito")
		}

		c.Set(ContextKeyOperator, claims.Subject)
		c.Set(ContextKeyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := deliverycontext.WithOperator(c.Request().Context(), claims.Subject)
		if logger := deliverycontext.GetLoggerOrDefault(ctx, nil); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("operator", claims.Subject)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextKeyRoles).(entity.Roles)
			if !ok || !roles.Contains(requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requer o papel " + requiredRole.String())
			}

			return next(c)
		}
	}
}
