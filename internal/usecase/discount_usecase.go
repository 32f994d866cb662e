package usecase

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDiscountCodeInput is the input of CreateDiscountCode.
type CreateDiscountCodeInput struct {
	Code          string
	DiscountType  string
	DiscountValue float64
	UsageLimit    *int
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	IsActive      bool
}

// DiscountCodeView is a discount code with its status evaluated at read time.
type DiscountCodeView struct {
	*entity.DiscountCode
	Status entity.DiscountStatus
}

// ApplyDiscountOutput is the result of redeeming a code against an order total.
type ApplyDiscountOutput struct {
	Code       string
	Discount   float64
	FinalTotal float64
}

// DiscountUsecase defines the discount code panel use cases.
type DiscountUsecase interface {
	CreateDiscountCode(ctx context.Context, input *CreateDiscountCodeInput) (*DiscountCodeView, error)
	ListDiscountCodes(ctx context.Context) ([]*DiscountCodeView, error)
	SetDiscountCodeActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteDiscountCode(ctx context.Context, id uuid.UUID) error

	// ApplyDiscountCode redeems an active code once and returns the discount granted.
	ApplyDiscountCode(ctx context.Context, code string, orderTotal float64) (*ApplyDiscountOutput, error)
}
