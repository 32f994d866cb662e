// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request bodies through struct tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports field names by their json tag.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Failures become ErrValidationFailed naming the fields.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}

	return domainerrors.NewValidationError(strings.Join(fields, ", "))
}
