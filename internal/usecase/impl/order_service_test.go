package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService(t *testing.T) {
	env := newTestEnv(t)
	srv := NewOrderService(OrderServiceParams{Repos: env.repos, Publisher: env.publisher, Logger: env.logger})
	ctx := context.Background()

	ana := env.seedCustomer(t, "ana@example.pt", 30, 45)
	env.seedCustomer(t, "rui@example.pt", 12)

	orders, err := srv.ListOrders(ctx, repository.OrderFilter{CustomerID: &ana.ID})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].CreatedAt.After(orders[1].CreatedAt))
	assert.Len(t, orders[0].Items, 1)

	updated, err := srv.UpdateOrderStatus(ctx, orders[0].ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)

	shipped := entity.OrderStatusShipped
	filtered, err := srv.ListOrders(ctx, repository.OrderFilter{Status: &shipped})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, orders[0].ID, filtered[0].ID)

	_, err = srv.UpdateOrderStatus(ctx, orders[0].ID, "lost")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.UpdateOrderStatus(ctx, uuid.New(), "completed")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	bogus := entity.OrderStatus("lost")
	_, err = srv.ListOrders(ctx, repository.OrderFilter{Status: &bogus})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
