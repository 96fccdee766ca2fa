// Package cartkit is a small collection of validated utilities built around
// a shared error taxonomy.
//
// Packages:
//
//   - pkg/cart: in-memory shopping cart with exact decimal totals
//   - pkg/grade: letter grades for scores in [0, 100]
//   - pkg/datefmt: YYYY-MM-DD to DD-MM-YYYY conversion with calendar checks
//   - pkg/palindrome: sentence palindrome detection
//   - pkg/validator: rules, ValidationErrors and failure kinds
//   - pkg/i18n: localized rendering of validation errors
//
// Supporting packages pkg/config, pkg/logger and pkg/sanitizer carry the
// environment config loader, the slog factory and string transforms.
//
// Every failure is classified by one of the validator kinds, checked with
// errors.Is:
//
//	err := c.Add("Apple", -1)
//	if errors.Is(err, validator.ErrInvalidValue) {
//		// reject the request
//	}
//
// Kinds are validator.ErrInvalidType, validator.ErrInvalidValue,
// validator.ErrInvalidFormat, validator.ErrInvalidArgument and
// validator.ErrNotFound.
package cartkit
