package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"omitempty,min=2"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:    "admin@clinic.local",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:    "not-an-email",
		Password: "abc",
		Name:     "x",
	})
	require.Error(t, err)

	errors := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", errors["Email"])
	assert.Equal(t, "Password must be at least 6 characters", errors["Password"])
	assert.Equal(t, "Name must be at least 2 characters", errors["Name"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{})
	require.Error(t, err)

	errors := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", errors["Email"])
	assert.Equal(t, "Password is required", errors["Password"])
	assert.NotContains(t, errors, "Name")
}
