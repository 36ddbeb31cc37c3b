package helper_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "sinafite_backend/internals/helpers"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Role  string `validate:"omitempty,oneof=admin member"`
}

func TestValidationErrorNamesEveryField(t *testing.T) {
	err := validator.New().Struct(sampleRequest{Email: "not-an-email", Role: "root"})
	require.Error(t, err)

	fe, ok := helper.ValidationError(err).(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "Name is required")
	assert.Contains(t, fe.Message, "Email must be a valid email address")
	assert.Contains(t, fe.Message, "Role must be one of: admin member")
}

func TestValidationErrorFallsBackOnForeignErrors(t *testing.T) {
	fe, ok := helper.ValidationError(assert.AnError).(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Invalid input", fe.Message)
}
