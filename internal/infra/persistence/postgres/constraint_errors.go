package postgres

import (
	"strings"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking. The DB is opened with TranslateError,
// so driver errors arrive as gorm sentinels.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// translateWriteError maps a failed insert or update onto the domain taxonomy.
// conflict is returned for unique violations; nil conflict falls through to a database error.
func translateWriteError(err error, conflict *domainerrors.BaseError, details string) error {
	switch {
	case conflict != nil && isUniqueConstraintViolation(err):
		return conflict.WithDetails(details)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewValidationError("referência inválida: " + details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.NewValidationError(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
