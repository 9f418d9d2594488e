package fold

import (
	"unicode"
	"unicode/utf8"
)

// Byte lowercases an ASCII letter. Every other byte maps to itself.
func Byte(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Rune lowercases via the Unicode case tables. Non-letters map to themselves.
func Rune(r rune) rune {
	return unicode.ToLower(r)
}

// IsASCII reports whether s contains only single-byte runes.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
