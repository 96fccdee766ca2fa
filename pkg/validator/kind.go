package validator

import (
	"encoding/json"
	"fmt"
)

// String asserts that v holds a string.
func String(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeError(field, "string", v)
	}
	return s, nil
}

// Number asserts that v holds a Go numeric value or a json.Number and
// returns it as float64. bool is rejected.
func Number(field string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, typeError(field, "number", v)
		}
		return f, nil
	default:
		return 0, typeError(field, "number", v)
	}
}

func typeError(field, want string, got any) ValidationErrors {
	return ValidationErrors{{
		Field:          field,
		Message:        fmt.Sprintf("must be a %s, got %T", want, got),
		Kind:           ErrInvalidType,
		TranslationKey: "validation.type",
		TranslationValues: map[string]any{
			"field": field,
			"type":  want,
		},
	}}
}
