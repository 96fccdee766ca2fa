package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			Kind:           ErrInvalidValue,
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Len validates the exact byte length of a string.
func Len(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			Kind:           ErrInvalidFormat,
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}
