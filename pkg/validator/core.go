package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string
	Message           string
	Kind              error
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed. Kind matching goes
// through Unwrap.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Unwrap exposes the failure kinds so errors.Is can match them.
func (ve ValidationErrors) Unwrap() []error {
	kinds := make([]error, 0, len(ve))
	for _, err := range ve {
		if err.Kind != nil {
			kinds = append(kinds, err.Kind)
		}
	}
	return kinds
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithKind returns a copy of the rule reporting the given failure kind.
func (r Rule) WithKind(kind error) Rule {
	r.Error.Kind = kind
	return r
}

// Apply executes every rule and returns all failures as ValidationErrors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First executes rules in order and stops at the first failure.
// Use it when later rules assume earlier ones held (e.g. parsing digits
// that were checked for shape first).
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return ValidationErrors{rule.Error}
		}
	}
	return nil
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
