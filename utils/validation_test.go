package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingErrorMessageNonValidatorError(t *testing.T) {
	msg := BindingErrorMessage(errors.New("unexpected EOF"))
	assert.Equal(t, "Invalid request body. Ensure all required fields are filled.", msg)
}

func TestBindingErrorMessageListsFields(t *testing.T) {
	type payload struct {
		Name   string `validate:"required"`
		Guests int    `validate:"gte=1"`
	}

	err := validator.New().Struct(payload{Guests: 0})
	require.Error(t, err)

	msg := BindingErrorMessage(err)
	assert.Contains(t, msg, "'Name' is required")
	assert.Contains(t, msg, "'Guests' must satisfy gte=1")
}
