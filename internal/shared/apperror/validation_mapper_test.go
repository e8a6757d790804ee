package apperror_test

import (
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name     string         `json:"name" validate:"required"`
	Balances map[string]int `json:"leave_balance" validate:"omitempty,dive,gte=0"`
}

func TestMapValidationError(t *testing.T) {
	v := apperror.NewValidator()

	t.Run("required field uses the json name", func(t *testing.T) {
		err := v.Struct(sampleForm{})
		require.Error(t, err)

		mapped := apperror.MapValidationError(err)
		assert.Equal(t, "Name is required", mapped.Error())
	})

	t.Run("map dive drops the key suffix", func(t *testing.T) {
		err := v.Struct(sampleForm{
			Name:     "Alice",
			Balances: map[string]int{"Annual Leave": -1},
		})
		require.Error(t, err)

		mapped := apperror.MapValidationError(err)
		assert.Equal(t, "Leave Balance is invalid", mapped.Error())
	})
}
