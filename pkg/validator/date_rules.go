package validator

import "fmt"

// Month validates a calendar month number (1-12).
func Month(field string, month int) Rule {
	return Rule{
		Check: func() bool {
			return month >= 1 && month <= 12
		},
		Error: ValidationError{
			Field:          field,
			Message:        "month must be between 01 and 12",
			Kind:           ErrInvalidValue,
			TranslationKey: "validation.month",
			TranslationValues: map[string]any{
				"field": field,
				"month": month,
			},
		},
	}
}

// DayOfMonth validates that 1 <= day <= maxDay. The caller computes maxDay
// for the month and year at hand.
func DayOfMonth(field string, day, maxDay int) Rule {
	return Rule{
		Check: func() bool {
			return day >= 1 && day <= maxDay
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("day must be between 01 and %02d", maxDay),
			Kind:           ErrInvalidValue,
			TranslationKey: "validation.day_of_month",
			TranslationValues: map[string]any{
				"field": field,
				"day":   day,
				"max":   maxDay,
			},
		},
	}
}
