// Package validator provides small, composable validation rules and the
// failure taxonomy shared by every cartkit component.
//
// A Rule couples a boolean Check with a ValidationError describing the
// failure. Rules are evaluated with Apply, which collects every failed rule
// into a ValidationErrors slice that satisfies the error interface. Callers
// that need to stop at the first problem use First instead.
//
// # Failure kinds
//
// Each ValidationError carries a Kind, one of the sentinel errors declared in
// errors.go:
//
//   - ErrInvalidType: the argument has the wrong basic kind
//   - ErrInvalidValue: right kind, but a domain constraint is violated
//   - ErrInvalidFormat: text does not match a required structural pattern
//   - ErrInvalidArgument: the argument cannot be used at all (grade scores)
//   - ErrNotFound: an operation references an absent identifier
//
// ValidationErrors unwraps to the kinds of its members, so callers branch
// with the standard library:
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.NonNegative("price", price),
//	)
//	if errors.Is(err, validator.ErrInvalidValue) {
//	    // reject input
//	}
//
// # Dynamic input
//
// String and Number assert the kind of an untyped value (for example a
// decoded JSON document) and fail with ErrInvalidType. bool is never
// treated as a number.
//
// # Translations
//
// TranslationKey and TranslationValues on ValidationError are consumed by
// the i18n package to render localized messages.
package validator
