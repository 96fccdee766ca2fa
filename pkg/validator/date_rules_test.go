package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cartkit/pkg/validator"
)

func TestMonth(t *testing.T) {
	t.Parallel()

	for m := 1; m <= 12; m++ {
		assert.True(t, validator.Month("month", m).Check(), "month %d", m)
	}
	assert.False(t, validator.Month("month", 0).Check())
	assert.False(t, validator.Month("month", 13).Check())

	rule := validator.Month("month", 13)
	assert.Equal(t, validator.ErrInvalidValue, rule.Error.Kind)
	assert.Equal(t, "validation.month", rule.Error.TranslationKey)
}

func TestDayOfMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.DayOfMonth("day", 1, 28).Check())
	assert.True(t, validator.DayOfMonth("day", 28, 28).Check())
	assert.False(t, validator.DayOfMonth("day", 29, 28).Check())
	assert.False(t, validator.DayOfMonth("day", 0, 31).Check())

	rule := validator.DayOfMonth("day", 30, 29)
	assert.Equal(t, "day must be between 01 and 29", rule.Error.Message)
	assert.Equal(t, map[string]any{"field": "day", "day": 30, "max": 29}, rule.Error.TranslationValues)
}
