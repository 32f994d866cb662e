// Package context carries request-scoped values between the HTTP layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from and echoed back on every admin request.
const HeaderXRequestID = "X-Request-Id"

type key[T any] struct{ name string }

func (k key[T]) get(ctx context.Context) (T, bool) {
	v, ok := ctx.Value(k).(T)

	return v, ok
}

func (k key[T]) with(ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, k, v)
}

//nolint:gochecknoglobals
var (
	requestIDKey = key[string]{"request_id"}
	operatorKey  = key[string]{"operator"}
	loggerKey    = key[*slog.Logger]{"logger"}
)

// SetRequestID stores the request ID on the echo context for the access log.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(requestIDKey.name, requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return requestIDKey.with(ctx, requestID)
}

// GetRequestIDFromContext returns "" outside an HTTP request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := requestIDKey.get(ctx)

	return id
}

// WithOperator records the authenticated admin subject.
func WithOperator(ctx context.Context, operator string) context.Context {
	return operatorKey.with(ctx, operator)
}

func GetOperatorFromContext(ctx context.Context) string {
	operator, _ := operatorKey.get(ctx)

	return operator
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return loggerKey.with(ctx, logger)
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := loggerKey.get(ctx); ok && logger != nil {
		return logger
	}

	return fallback
}
