// Package sanitizer provides small, stateless helpers that normalise input
// before it is validated or compared.
//
// The string helpers cover trimming, ASCII case folding, byte reversal and
// the alphanumeric filter used for sentence palindromes.
//
// Apply and Compose chain helpers into pipelines:
//
//	normalize := sanitizer.Compose(
//	    sanitizer.KeepASCIIAlphanumeric,
//	    sanitizer.ToLowerASCII,
//	)
//
//	normalize("A man, a plan!") // "amanaplan"
//
// None of the helpers returns an error and none keeps state, so they are safe
// for concurrent use.
package sanitizer
