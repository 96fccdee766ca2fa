package validator

import "errors"

// Failure kinds shared by all components.
var (
	// ErrValidationFailed matches any validation failure regardless of kind.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidType is returned when an argument's basic kind does not match
	// the expected kind, e.g. a number where text is required.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue is returned when an argument has the right kind but
	// violates a domain constraint.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidFormat is returned when text does not match a required pattern.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidArgument is returned when an argument cannot be used at all.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when an operation references an absent identifier.
	ErrNotFound = errors.New("not found")
)
