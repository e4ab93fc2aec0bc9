package stringutil

import (
	"unicode"
	"unicode/utf8"
)

// IsIdentifierStart reports whether s starts with a character that can begin
// an identifier: a letter or an underscore.
func IsIdentifierStart(s string) bool {
	if s == "" {
		return false
	}

	r, wid := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && wid <= 1 {
		return false
	}

	return r == '_' || unicode.IsLetter(r)
}

// isSpace matches the whitespace allowed around a number.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}

	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
