package postgres

import (
	"context"
	"strings"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// discountCodeRepository implements the domain.DiscountCodeRepository interface.
type discountCodeRepository struct {
	q *query.Query
}

// NewDiscountCodeRepository is the constructor for discountCodeRepository.
func NewDiscountCodeRepository(db *gorm.DB) repository.DiscountCodeRepository {
	return &discountCodeRepository{
		q: query.Use(db),
	}
}

// CreateDiscountCode persists a new discount code.
func (repo *discountCodeRepository) CreateDiscountCode(ctx context.Context, code *entity.DiscountCode) error {
	ensureID(&code.ID)
	codeM := fromDiscountCodeDomain(code)

	if err := repo.q.DiscountCodeModel.WithContext(ctx).Create(codeM); err != nil {
		return translateWriteError(err, domainerrors.ErrDiscountCodeConflict, code.Code)
	}

	code.CreatedAt = codeM.CreatedAt
	code.UpdatedAt = codeM.UpdatedAt

	return nil
}

// FindDiscountCodeByID retrieves a discount code by its unique ID.
func (repo *discountCodeRepository) FindDiscountCodeByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCode, error) {
	return repo.findOne(ctx, repo.q.DiscountCodeModel.ID.Eq(id))
}

// FindDiscountCodeByCode retrieves a discount code by its code, case-insensitively.
func (repo *discountCodeRepository) FindDiscountCodeByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	return repo.findOne(ctx, repo.q.DiscountCodeModel.Code.Eq(strings.ToUpper(strings.TrimSpace(code))))
}

func (repo *discountCodeRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.DiscountCode, error) {
	codeM, err := repo.q.DiscountCodeModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount code")
	}

	return toDiscountCodeDomain(codeM), nil
}

// ListDiscountCodes retrieves every discount code, newest first.
func (repo *discountCodeRepository) ListDiscountCodes(ctx context.Context) ([]*entity.DiscountCode, error) {
	codeModels, err := repo.q.DiscountCodeModel.WithContext(ctx).
		Order(repo.q.DiscountCodeModel.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list discount codes")
	}

	codes := make([]*entity.DiscountCode, 0, len(codeModels))
	for _, m := range codeModels {
		codes = append(codes, toDiscountCodeDomain(m))
	}

	return codes, nil
}

// SetDiscountCodeActive toggles the active flag.
func (repo *discountCodeRepository) SetDiscountCodeActive(ctx context.Context, id uuid.UUID, active bool) error {
	d := repo.q.DiscountCodeModel
	result, err := d.WithContext(ctx).Where(d.ID.Eq(id)).Update(d.IsActive, active)
	if err != nil {
		return translateWriteError(err, nil, "failed to update discount code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiscountCodeNotFound
	}

	return nil
}

// DeleteDiscountCode removes a discount code.
func (repo *discountCodeRepository) DeleteDiscountCode(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.DiscountCodeModel.WithContext(ctx).
		Where(repo.q.DiscountCodeModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete discount code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiscountCodeNotFound
	}

	return nil
}

// IncrementUsage bumps usage_count in a single guarded statement, so concurrent
// redemptions cannot exceed the usage limit.
func (repo *discountCodeRepository) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	d := repo.q.DiscountCodeModel
	dc := d.WithContext(ctx)
	underLimit := dc.Where(d.UsageLimit.IsNull()).Or(d.UsageCount.LtCol(d.UsageLimit))

	result, err := d.WithContext(ctx).
		Where(d.ID.Eq(id), underLimit).
		UpdateSimple(d.UsageCount.Add(1))
	if err != nil {
		return false, errors.Wrap(err, "failed to increment discount code usage")
	}

	return result.RowsAffected == 1, nil
}
