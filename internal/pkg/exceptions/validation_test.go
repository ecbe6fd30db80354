package exceptions

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedForm struct {
	Name    string `validate:"required"`
	Outcome string `validate:"required"`
	Count   int    `validate:"gte=1"`
}

func TestBuildFieldErrorsCollectsEveryFailure(t *testing.T) {
	err := validator.New().Struct(&validatedForm{})
	require.Error(t, err)

	fieldErrors := BuildFieldErrors(err)
	require.Len(t, fieldErrors, 3)
	assert.Equal(t, "is required", fieldErrors["name"])
	assert.Equal(t, "is required", fieldErrors["outcome"])
	assert.Equal(t, "must be greater than or equal to 1", fieldErrors["count"])
}

func TestBuildFieldErrorsNonValidationError(t *testing.T) {
	assert.Nil(t, BuildFieldErrors(errors.New("boom")))
}

func TestFormatAllValidationErrorsJoinsEveryField(t *testing.T) {
	err := validator.New().Struct(&validatedForm{Count: 1})
	require.Error(t, err)

	message := FormatAllValidationErrors(err)
	assert.Contains(t, message, "name is required")
	assert.Contains(t, message, "outcome is required")
}

func TestErrInputValidationCarriesFieldErrors(t *testing.T) {
	err := validator.New().Struct(&validatedForm{Count: 1})
	require.Error(t, err)

	customErr := ErrInputValidation(err)
	assert.Equal(t, 400, customErr.StatusCode)
	assert.Len(t, customErr.FieldErrors, 2)
}

func TestCustomErrorMessage(t *testing.T) {
	customErr := BuildNewCustomError(errors.New("low level"), 500, "client message", "dev message")
	assert.Contains(t, customErr.Error(), "dev message: low level")
	assert.Len(t, customErr.Locations, 1)
}
