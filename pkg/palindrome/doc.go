// Package palindrome detects sentence palindromes.
//
// Text is normalized by dropping everything except ASCII letters and digits
// and lower-casing what remains. Text that normalizes to the empty string is
// a palindrome.
//
//	palindrome.IsSentence("A man, a plan, a canal: Panama") // true
package palindrome
