package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Email string `json:"email" validate:"required,email"`
	Level string `json:"level" validate:"required,oneof=Beginner Intermediate Expert"`
	Years float64 `json:"years" validate:"gte=0"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&sampleDTO{
		Email: "user@test.com",
		Level: "Expert",
		Years: 3,
	})
	assert.NoError(t, err)
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleDTO{Email: "not-an-email", Level: "Guru", Years: -1})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "level")
	assert.Contains(t, vErr.Errors, "years")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Contains(t, vErr.Errors["level"], "Must be one of")
}
