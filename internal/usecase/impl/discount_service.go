package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// discountService implements the DiscountUsecase interface.
type discountService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	notifier  *changeNotifier
	logger    *slog.Logger
	now       func() time.Time
}

// DiscountServiceParams holds dependencies for DiscountService, injected by Fx.
type DiscountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewDiscountService is the constructor for discountService.
func NewDiscountService(params DiscountServiceParams) usecase.DiscountUsecase {
	return &discountService{
		txManager: params.TxManager,
		repos:     params.Repos,
		notifier:  newChangeNotifier(params.Publisher, params.Logger),
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *discountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDiscountCode validates and stores a code. Codes are stored uppercased.
func (srv *discountService) CreateDiscountCode(ctx context.Context, input *usecase.CreateDiscountCodeInput) (*usecase.DiscountCodeView, error) {
	code := normalizeCode(input.Code)
	if err := inputValidator.Var(code, "required,alphanum,min=3,max=32"); err != nil {
		return nil, domainerrors.NewValidationError("código tem de ter entre 3 e 32 letras ou números")
	}

	discountType := entity.DiscountType(input.DiscountType)
	switch {
	case !discountType.IsValid():
		return nil, domainerrors.NewValidationError("tipo de desconto inválido: " + input.DiscountType)
	case input.DiscountValue <= 0:
		return nil, domainerrors.NewValidationError("o valor do desconto tem de ser positivo")
	case discountType == entity.DiscountTypePercentage && input.DiscountValue > 100:
		return nil, domainerrors.NewValidationError("a percentagem não pode exceder 100")
	case input.UsageLimit != nil && *input.UsageLimit < 1:
		return nil, domainerrors.NewValidationError("o limite de utilizações tem de ser pelo menos 1")
	case input.ValidFrom != nil && input.ValidUntil != nil && !input.ValidUntil.After(*input.ValidFrom):
		return nil, domainerrors.NewValidationError("a data de fim tem de ser posterior à data de início")
	}

	now := srv.now().UTC()
	discount := &entity.DiscountCode{
		ID:            uuid.New(),
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: input.DiscountValue,
		UsageLimit:    input.UsageLimit,
		ValidFrom:     input.ValidFrom,
		ValidUntil:    input.ValidUntil,
		IsActive:      input.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := srv.repos.NewDiscountCodeRepository().CreateDiscountCode(ctx, discount); err != nil {
		return nil, errors.WithMessage(err, "failed to create discount code")
	}

	srv.log(ctx).Info("Discount code created", slog.String("id", discount.ID.String()), slog.String("code", code))
	srv.notifier.notify(ctx, tableDiscountCodes, service.ChangeActionCreated, discount.ID.String())

	return srv.view(discount), nil
}

// ListDiscountCodes returns every code with its status evaluated now.
func (srv *discountService) ListDiscountCodes(ctx context.Context) ([]*usecase.DiscountCodeView, error) {
	codes, err := srv.repos.NewDiscountCodeRepository().ListDiscountCodes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list discount codes")
	}

	views := make([]*usecase.DiscountCodeView, 0, len(codes))
	for _, code := range codes {
		views = append(views, srv.view(code))
	}

	return views, nil
}

// SetDiscountCodeActive toggles a code on or off.
func (srv *discountService) SetDiscountCodeActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := srv.repos.NewDiscountCodeRepository().SetDiscountCodeActive(ctx, id, active); err != nil {
		return mapNotFound(err, repository.ErrDiscountCodeNotFound, domainerrors.ErrDiscountCodeNotFound, "failed to toggle discount code")
	}

	srv.notifier.notify(ctx, tableDiscountCodes, service.ChangeActionUpdated, id.String())

	return nil
}

// DeleteDiscountCode removes a code.
func (srv *discountService) DeleteDiscountCode(ctx context.Context, id uuid.UUID) error {
	if err := srv.repos.NewDiscountCodeRepository().DeleteDiscountCode(ctx, id); err != nil {
		return mapNotFound(err, repository.ErrDiscountCodeNotFound, domainerrors.ErrDiscountCodeNotFound, "failed to delete discount code")
	}

	srv.notifier.notify(ctx, tableDiscountCodes, service.ChangeActionDeleted, id.String())

	return nil
}

// ApplyDiscountCode redeems a code once. The status check and the usage increment share
// a transaction, and the increment itself refuses to pass the usage limit.
func (srv *discountService) ApplyDiscountCode(ctx context.Context, code string, orderTotal float64) (*usecase.ApplyDiscountOutput, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, domainerrors.NewValidationError("código é obrigatório")
	}
	if orderTotal < 0 {
		return nil, domainerrors.NewValidationError("o total da encomenda não pode ser negativo")
	}

	var output *usecase.ApplyDiscountOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		discountRepo := repoFactory.NewDiscountCodeRepository()
		discount, err := discountRepo.FindDiscountCodeByCode(ctx, code)
		if err != nil {
			return mapNotFound(err, repository.ErrDiscountCodeNotFound, domainerrors.ErrDiscountCodeNotFound, "failed to find discount code")
		}

		if status := discount.Status(srv.now()); status != entity.DiscountStatusActive {
			return domainerrors.ErrDiscountCodeUnavailable.WithDetails(string(status))
		}

		incremented, err := discountRepo.IncrementUsage(ctx, discount.ID)
		if err != nil {
			return err
		}
		if !incremented {
			return domainerrors.ErrDiscountCodeUnavailable.WithDetails(string(entity.DiscountStatusExhausted))
		}

		amount := discount.Amount(orderTotal)
		output = &usecase.ApplyDiscountOutput{
			Code:       discount.Code,
			Discount:   amount,
			FinalTotal: entity.RoundCents(orderTotal - amount),
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to apply discount code")
	}

	srv.log(ctx).Info("Discount code applied", slog.String("code", output.Code), slog.Float64("discount", output.Discount))

	return output, nil
}

func (srv *discountService) view(code *entity.DiscountCode) *usecase.DiscountCodeView {
	return &usecase.DiscountCodeView{
		DiscountCode: code,
		Status:       code.Status(srv.now()),
	}
}

func normalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
