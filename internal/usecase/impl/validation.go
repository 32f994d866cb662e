package impl

import (
	"strings"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// inputValidator checks single values before any store call.
//
//nolint:gochecknoglobals
var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// normalizeEmail trims and lowercases an email and checks its shape.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", domainerrors.NewValidationError("email é obrigatório")
	}
	if err := inputValidator.Var(email, "email"); err != nil {
		return "", domainerrors.NewValidationError("email inválido")
	}

	return email, nil
}

// requireName returns the trimmed name or a validation error naming the field.
func requireName(raw, field string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domainerrors.NewValidationError(field + " é obrigatório")
	}

	return name, nil
}
