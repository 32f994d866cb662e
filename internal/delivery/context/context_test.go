package context

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestScopedValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Empty(t, GetOperatorFromContext(ctx))

	ctx = WithRequestID(ctx, "req-42")
	ctx = WithOperator(ctx, "ops@example.com")
	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Equal(t, "ops@example.com", GetOperatorFromContext(ctx))
}

func TestKeysDoNotCollide(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	assert.Empty(t, GetOperatorFromContext(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, GetLoggerOrDefault(WithLogger(context.Background(), nil), fallback))
}
