// Package datefmt converts calendar dates from YYYY-MM-DD to DD-MM-YYYY.
//
// Input must be exactly ten characters with hyphens at offsets 4 and 7 and
// ASCII digits everywhere else; anything else, including surrounding
// whitespace, fails with validator.ErrInvalidFormat. Well-formed input with
// an impossible month or day fails with validator.ErrInvalidValue. February
// follows the Gregorian leap-year rule.
//
//	out, err := datefmt.Convert("2000-02-29") // "29-02-2000"
package datefmt
