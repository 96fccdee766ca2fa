package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern validates value against a precompiled expression.
// Anchor the expression if the whole value has to match.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			Kind:           ErrInvalidFormat,
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// Digits validates that value is non-empty and made only of ASCII digits.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			for i := 0; i < len(value); i++ {
				if value[i] < '0' || value[i] > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			Kind:           ErrInvalidFormat,
			TranslationKey: "validation.numeric_string",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
