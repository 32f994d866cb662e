package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockUsecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerAggregator_Aggregate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	aggregator := NewCustomerAggregator(env.repos, env.cfg)

	tests := []struct {
		name       string
		email      string
		totals     []float64
		wantType   entity.CustomerType
		wantSpent  float64
		wantOrders int
	}{
		{name: "three orders totalling 450 is vip", email: "ana@example.pt", totals: []float64{150, 200, 100}, wantType: entity.CustomerTypeVIP, wantSpent: 450, wantOrders: 3},
		{name: "one big order is vip", email: "rui@example.pt", totals: []float64{300}, wantType: entity.CustomerTypeVIP, wantSpent: 300, wantOrders: 1},
		{name: "two small orders is recurring", email: "eva@example.pt", totals: []float64{19.99, 20.01}, wantType: entity.CustomerTypeRecurring, wantSpent: 40, wantOrders: 2},
		{name: "no orders is new", email: "joao@example.pt", wantType: entity.CustomerTypeNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := env.seedCustomer(t, tt.email, tt.totals...)

			summary, err := aggregator.Aggregate(ctx, customer)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, summary.CustomerType)
			assert.Equal(t, tt.wantOrders, summary.OrderCount)
			assert.InDelta(t, tt.wantSpent, summary.TotalSpent, 0.001)
			assert.True(t, summary.IsNewsletterSubscribed)

			if tt.wantOrders == 0 {
				assert.Nil(t, summary.LastPurchase)

				return
			}
			require.NotNil(t, summary.LastPurchase)
			want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, tt.wantOrders-1)
			assert.True(t, want.Equal(*summary.LastPurchase), "last purchase %s, want %s", summary.LastPurchase, want)
		})
	}
}

func TestCustomerAggregator_AggregateMany(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	aggregator := NewCustomerAggregator(env.repos, env.cfg)

	ana := env.seedCustomer(t, "ana@example.pt", 150, 200, 100)
	rui := env.seedCustomer(t, "rui@example.pt", 25)
	eva := &entity.Customer{Email: "eva@example.pt", FullName: "Eva"}
	require.NoError(t, env.repos.NewCustomerRepository().CreateCustomer(ctx, eva))

	summaries, err := aggregator.AggregateMany(ctx, []*entity.Customer{rui, eva, ana})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, rui.ID, summaries[0].ID)
	assert.Equal(t, entity.CustomerTypeRecurring, summaries[0].CustomerType)
	assert.True(t, summaries[0].IsNewsletterSubscribed)

	assert.Equal(t, eva.ID, summaries[1].ID)
	assert.Equal(t, entity.CustomerTypeNew, summaries[1].CustomerType)
	assert.False(t, summaries[1].IsNewsletterSubscribed)
	assert.Zero(t, summaries[1].TotalSpent)

	assert.Equal(t, ana.ID, summaries[2].ID)
	assert.Equal(t, entity.CustomerTypeVIP, summaries[2].CustomerType)
	assert.InDelta(t, 450, summaries[2].TotalSpent, 0.001)

	empty, err := aggregator.AggregateMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCustomerAggregator_UsesConfiguredThresholds(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Admin.VIPOrderThreshold = 10
	env.cfg.Admin.VIPSpendThreshold = 1000
	aggregator := NewCustomerAggregator(env.repos, env.cfg)

	customer := env.seedCustomer(t, "ana@example.pt", 150, 200, 100)
	summary, err := aggregator.Aggregate(context.Background(), customer)
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerTypeRecurring, summary.CustomerType)
}

func TestCustomerService_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	srv := env.customerService()
	ctx := context.Background()

	created, err := srv.CreateCustomer(ctx, &usecase.CreateCustomerInput{Email: "  Ana@Example.PT ", FullName: " Ana Silva "})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.pt", created.Email)
	assert.Equal(t, "Ana Silva", created.FullName)

	_, err = srv.CreateCustomer(ctx, &usecase.CreateCustomerInput{Email: "ana@example.pt"})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerEmailConflict)

	_, err = srv.CreateCustomer(ctx, &usecase.CreateCustomerInput{Email: "not-an-email"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	require.NoError(t, srv.SetNewsletter(ctx, "ANA@example.pt", true))

	summaries, err := srv.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].IsNewsletterSubscribed)
	assert.Equal(t, entity.CustomerTypeNew, summaries[0].CustomerType)

	require.NoError(t, srv.SetNewsletter(ctx, "ana@example.pt", false))
	require.NoError(t, srv.SetNewsletter(ctx, "ana@example.pt", false))

	summary, err := srv.GetCustomer(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, summary.IsNewsletterSubscribed)
}

func TestCustomerService_UpdateCustomerNotes(t *testing.T) {
	env := newTestEnv(t)
	srv := env.customerService()
	ctx := context.Background()
	ana := env.seedCustomer(t, "ana@example.pt")

	updated, err := srv.UpdateCustomerNotes(ctx, ana.ID, "Prefere entregas ao sábado")
	require.NoError(t, err)
	assert.Equal(t, "Prefere entregas ao sábado", updated.Notes)

	stored, err := env.repos.NewCustomerRepository().FindCustomerByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prefere entregas ao sábado", stored.Notes)
	assert.Equal(t, "ana@example.pt", stored.Email)

	_, err = srv.UpdateCustomerNotes(ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)

	_, err = srv.GetCustomer(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_DeleteCustomers_DefaultsMode(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Admin.BulkDeleteMode = string(entity.BulkDeleteAllOrNothing)
	deleter := mockUsecase.NewMockCascadingDeleter(t)

	srv := NewCustomerService(CustomerServiceParams{
		Repos:      env.repos,
		Aggregator: NewCustomerAggregator(env.repos, env.cfg),
		Deleter:    deleter,
		Publisher:  env.publisher,
		Config:     env.cfg,
		Logger:     env.logger,
	})

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New()}
	want := &entity.BulkDeleteResult{Mode: entity.BulkDeleteAllOrNothing, Succeeded: ids}

	deleter.EXPECT().DeleteCustomers(ctx, ids, entity.BulkDeleteAllOrNothing).Return(want, nil).Once()
	deleter.EXPECT().DeleteCustomers(ctx, ids, entity.BulkDeleteBestEffort).Return(&entity.BulkDeleteResult{Mode: entity.BulkDeleteBestEffort}, nil).Once()
	deleter.EXPECT().Delete(ctx, entity.RootKindCustomer, mock.AnythingOfType("uuid.UUID")).Return(&entity.DeleteReport{}, nil).Once()

	got, err := srv.DeleteCustomers(ctx, ids, "")
	require.NoError(t, err)
	assert.Same(t, want, got)

	got, err = srv.DeleteCustomers(ctx, ids, entity.BulkDeleteBestEffort)
	require.NoError(t, err)
	assert.Equal(t, entity.BulkDeleteBestEffort, got.Mode)

	_, err = srv.DeleteCustomer(ctx, ids[0])
	require.NoError(t, err)
}
