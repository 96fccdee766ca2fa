package palindrome

import (
	"github.com/dmitrymomot/cartkit/pkg/sanitizer"
	"github.com/dmitrymomot/cartkit/pkg/validator"
)

var normalize = sanitizer.Compose(
	sanitizer.KeepASCIIAlphanumeric,
	sanitizer.ToLowerASCII,
)

// Normalize returns the lower-cased ASCII letters and digits of text.
func Normalize(text string) string {
	return normalize(text)
}

// IsSentence reports whether the normalized text reads the same backwards.
func IsSentence(text string) bool {
	n := Normalize(text)
	return n == sanitizer.ReverseASCII(n)
}

// IsSentenceValue is IsSentence for untyped input. Non-string values fail
// with validator.ErrInvalidType.
func IsSentenceValue(text any) (bool, error) {
	s, err := validator.String("text", text)
	if err != nil {
		return false, err
	}
	return IsSentence(s), nil
}
