package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiscountService(env *testEnv, now time.Time) *discountService {
	srv := NewDiscountService(DiscountServiceParams{
		TxManager: env.txManager,
		Repos:     env.repos,
		Publisher: env.publisher,
		Logger:    env.logger,
	}).(*discountService)
	srv.now = func() time.Time { return now }

	return srv
}

func TestDiscountService_CreateDiscountCode(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	srv := newTestDiscountService(env, now)
	ctx := context.Background()

	limit := 2
	view, err := srv.CreateDiscountCode(ctx, &usecase.CreateDiscountCodeInput{
		Code: " verao10 ", DiscountType: "percentage", DiscountValue: 10, UsageLimit: &limit, IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "VERAO10", view.Code)
	assert.Equal(t, entity.DiscountStatusActive, view.Status)

	_, err = srv.CreateDiscountCode(ctx, &usecase.CreateDiscountCodeInput{Code: "Verao10", DiscountType: "fixed", DiscountValue: 5})
	assert.ErrorIs(t, err, domainerrors.ErrDiscountCodeConflict)

	zero := 0
	until := now.Add(-time.Hour)
	invalid := []*usecase.CreateDiscountCodeInput{
		{Code: "AB", DiscountType: "fixed", DiscountValue: 5},
		{Code: "SALDOS", DiscountType: "bogof", DiscountValue: 5},
		{Code: "SALDOS", DiscountType: "fixed", DiscountValue: 0},
		{Code: "SALDOS", DiscountType: "percentage", DiscountValue: 120},
		{Code: "SALDOS", DiscountType: "fixed", DiscountValue: 5, UsageLimit: &zero},
		{Code: "SALDOS", DiscountType: "fixed", DiscountValue: 5, ValidFrom: &now, ValidUntil: &until},
	}
	for _, input := range invalid {
		_, err := srv.CreateDiscountCode(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "%+v", input)
	}
}

func TestDiscountService_ListEvaluatesStatus(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	srv := newTestDiscountService(env, now)
	ctx := context.Background()

	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 7)
	inputs := map[string]*usecase.CreateDiscountCodeInput{
		"ATIVO":     {Code: "ATIVO", DiscountType: "fixed", DiscountValue: 5, IsActive: true},
		"DESLIGADO": {Code: "DESLIGADO", DiscountType: "fixed", DiscountValue: 5},
		"PASSADO":   {Code: "PASSADO", DiscountType: "fixed", DiscountValue: 5, IsActive: true, ValidUntil: &past},
		"FUTURO":    {Code: "FUTURO", DiscountType: "fixed", DiscountValue: 5, IsActive: true, ValidFrom: &future},
	}
	for _, input := range inputs {
		_, err := srv.CreateDiscountCode(ctx, input)
		require.NoError(t, err)
	}

	views, err := srv.ListDiscountCodes(ctx)
	require.NoError(t, err)
	got := make(map[string]entity.DiscountStatus, len(views))
	for _, v := range views {
		got[v.Code] = v.Status
	}
	assert.Equal(t, map[string]entity.DiscountStatus{
		"ATIVO":     entity.DiscountStatusActive,
		"DESLIGADO": entity.DiscountStatusInactive,
		"PASSADO":   entity.DiscountStatusExpired,
		"FUTURO":    entity.DiscountStatusScheduled,
	}, got)
}

func TestDiscountService_ApplyDiscountCode(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	srv := newTestDiscountService(env, now)
	ctx := context.Background()

	limit := 2
	created, err := srv.CreateDiscountCode(ctx, &usecase.CreateDiscountCodeInput{
		Code: "VERAO10", DiscountType: "percentage", DiscountValue: 10, UsageLimit: &limit, IsActive: true,
	})
	require.NoError(t, err)

	out, err := srv.ApplyDiscountCode(ctx, "verao10", 80)
	require.NoError(t, err)
	assert.Equal(t, "VERAO10", out.Code)
	assert.InDelta(t, 8.0, out.Discount, 0.001)
	assert.InDelta(t, 72.0, out.FinalTotal, 0.001)

	_, err = srv.ApplyDiscountCode(ctx, "VERAO10", 80)
	require.NoError(t, err)

	_, err = srv.ApplyDiscountCode(ctx, "VERAO10", 80)
	assert.ErrorIs(t, err, domainerrors.ErrDiscountCodeUnavailable)
	assert.Equal(t, string(entity.DiscountStatusExhausted), domainerrors.FromError(err).Details())

	stored, err := env.repos.NewDiscountCodeRepository().FindDiscountCodeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.UsageCount)

	_, err = srv.ApplyDiscountCode(ctx, "NAOEXISTE", 80)
	assert.ErrorIs(t, err, domainerrors.ErrDiscountCodeNotFound)

	require.NoError(t, srv.SetDiscountCodeActive(ctx, created.ID, false))
	_, err = srv.ApplyDiscountCode(ctx, "VERAO10", 80)
	assert.ErrorIs(t, err, domainerrors.ErrDiscountCodeUnavailable)
	assert.Equal(t, string(entity.DiscountStatusInactive), domainerrors.FromError(err).Details())
}

func TestDiscountService_ApplyDiscountCode_ConcurrentRedemptionsRespectLimit(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestDiscountService(env, time.Now())
	ctx := context.Background()

	limit := 3
	_, err := srv.CreateDiscountCode(ctx, &usecase.CreateDiscountCodeInput{
		Code: "FLASH", DiscountType: "fixed", DiscountValue: 5, UsageLimit: &limit, IsActive: true,
	})
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := srv.ApplyDiscountCode(ctx, "FLASH", 20); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, succeeded)
}

func TestDiscountService_DeleteAndToggleMissing(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestDiscountService(env, time.Now())
	ctx := context.Background()

	assert.ErrorIs(t, srv.DeleteDiscountCode(ctx, uuid.New()), domainerrors.ErrDiscountCodeNotFound)
	assert.ErrorIs(t, srv.SetDiscountCodeActive(ctx, uuid.New(), true), domainerrors.ErrDiscountCodeNotFound)
}
