package grade_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cartkit/pkg/grade"
	"github.com/dmitrymomot/cartkit/pkg/validator"
)

func TestAssign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  grade.Grade
	}{
		{100, grade.A},
		{95, grade.A},
		{90.01, grade.A},
		{90, grade.A},
		{89.99, grade.B},
		{85, grade.B},
		{80, grade.B},
		{79.99, grade.C},
		{75, grade.C},
		{70, grade.C},
		{69.99, grade.D},
		{65, grade.D},
		{60, grade.D},
		{59.99, grade.F},
		{30, grade.F},
		{0.01, grade.F},
		{0, grade.F},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.score), func(t *testing.T) {
			got, err := grade.Assign(tt.score)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "score %v", tt.score)
		})
	}
}

func TestAssign_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
	}{
		{"below range", -1},
		{"just below range", -0.01},
		{"above range", 101},
		{"just above range", 100.01},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := grade.Assign(tt.score)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, validator.ErrInvalidArgument)
			assert.NotErrorIs(t, err, validator.ErrInvalidValue)
			assert.Len(t, validator.ExtractValidationErrors(err), 1)
		})
	}
}

func TestAssignValue(t *testing.T) {
	t.Parallel()

	t.Run("numeric kinds", func(t *testing.T) {
		for _, v := range []any{90, int64(80), float32(70), uint8(60), 59.5, json.Number("95")} {
			_, err := grade.AssignValue(v)
			assert.NoError(t, err, "%T", v)
		}

		g, err := grade.AssignValue(85)
		require.NoError(t, err)
		assert.Equal(t, grade.B, g)
	})

	t.Run("non-numeric input", func(t *testing.T) {
		for _, v := range []any{"90", nil, []int{90}, true} {
			_, err := grade.AssignValue(v)
			require.Error(t, err, "%T", v)
			assert.ErrorIs(t, err, validator.ErrInvalidArgument)
			assert.NotErrorIs(t, err, validator.ErrInvalidType)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := grade.AssignValue(150)
		assert.ErrorIs(t, err, validator.ErrInvalidArgument)
	})

	t.Run("string form", func(t *testing.T) {
		assert.Equal(t, "A", grade.A.String())
	})
}

func TestDistribution(t *testing.T) {
	t.Parallel()

	t.Run("every integer score", func(t *testing.T) {
		scores := make([]float64, 0, 101)
		for s := 0; s <= 100; s++ {
			scores = append(scores, float64(s))
		}

		got, err := grade.Distribution(scores...)
		require.NoError(t, err)
		assert.Equal(t, map[grade.Grade]int{
			grade.A: 11,
			grade.B: 10,
			grade.C: 10,
			grade.D: 10,
			grade.F: 60,
		}, got)
	})

	t.Run("no scores", func(t *testing.T) {
		got, err := grade.Distribution()
		require.NoError(t, err)
		assert.Len(t, got, len(grade.All))
		for _, g := range grade.All {
			assert.Zero(t, got[g])
		}
	})

	t.Run("stops at invalid score", func(t *testing.T) {
		got, err := grade.Distribution(90, 200, 50)
		assert.ErrorIs(t, err, validator.ErrInvalidArgument)
		assert.Nil(t, got)
	})
}
