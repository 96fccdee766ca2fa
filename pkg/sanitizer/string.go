package sanitizer

import "strings"

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLowerASCII lower-cases ASCII letters and leaves every other byte alone.
func ToLowerASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// KeepASCIIAlphanumeric drops every character that is not an ASCII letter
// or digit. Multi-byte runes are dropped as a whole since none of their
// bytes fall in the ASCII range.
func KeepASCIIAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isASCIIAlphanumeric(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ReverseASCII returns s with its bytes in reverse order. Only meaningful for
// ASCII input.
func ReverseASCII(s string) string {
	buf := []byte(s)
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

func isASCIIAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
