package validator

import (
	"fmt"
	"math"
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			Kind:           ErrInvalidValue,
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			Kind:           ErrInvalidValue,
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// NumBetween validates that min <= value <= max.
// NaN never satisfies the check.
func NumBetween[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			Kind:           ErrInvalidValue,
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value >= zero
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be negative",
			Kind:           ErrInvalidValue,
			TranslationKey: "validation.non_negative",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Finite validates that a float is neither NaN nor an infinity.
func Finite(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsNaN(value) && !math.IsInf(value, 0)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a finite number",
			Kind:           ErrInvalidValue,
			TranslationKey: "validation.finite",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
