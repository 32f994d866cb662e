package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrDiscountCodeNotFound is returned when a discount code is not found.
var ErrDiscountCodeNotFound = errors.New("discount code not found")

// DiscountCodeRepository defines discount code persistence.
type DiscountCodeRepository interface {
	CreateDiscountCode(ctx context.Context, code *entity.DiscountCode) error
	FindDiscountCodeByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCode, error)
	FindDiscountCodeByCode(ctx context.Context, code string) (*entity.DiscountCode, error)
	ListDiscountCodes(ctx context.Context) ([]*entity.DiscountCode, error)
	SetDiscountCodeActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteDiscountCode(ctx context.Context, id uuid.UUID) error

	// IncrementUsage bumps usage_count unless the usage limit is reached.
	// It reports false when the limit prevented the update.
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
}
