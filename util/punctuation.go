// Package util holds character-class predicates shared by the reporting and
// training code.
package util

import (
	"unicode"
)

// IsPunctuation checks if a string consists entirely of punctuation or symbols.
// The empty string is not punctuation.
func IsPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isPunct(r) {
			return false
		}
	}
	return true
}

func isPunct(r rune) bool {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return true
	}
	// CJK Symbols and Punctuation
	if r >= 0x3000 && r <= 0x303F {
		return true
	}
	// Full-width forms
	if r >= 0xFF00 && r <= 0xFFEF && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return true
	}
	// Thai marks used as punctuation: paiyannoi, maiyamok, fongman, angkhankhu, khomut
	switch r {
	case 0x0E2F, 0x0E46, 0x0E4F, 0x0E5A, 0x0E5B:
		return true
	}
	return false
}

// IsNumericOrPunct reports whether s is made only of ASCII digits and
// non-word runes. Letters, non-ASCII numbers (Thai ๑, superscript ²) and '_'
// are word runes. Such tokens never count as content words.
func IsNumericOrPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			return false
		}
	}
	return true
}
