package validator

import (
	"testing"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email,omitempty" validate:"omitempty,email"`
	Rate  float64 `json:"rate" validate:"gte=0,lte=100"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Name: "Vestidos", Rate: 23}))

	err := v.Validate(&sampleRequest{Email: "x", Rate: 120})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	details := domainerrors.FromError(err).Details()
	assert.Contains(t, details, "name (required)")
	assert.Contains(t, details, "email (email)")
	assert.Contains(t, details, "rate (lte)")
}
