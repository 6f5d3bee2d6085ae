// Package noteid produces and sanitizes note identifiers.
//
// An identifier doubles as the note's filename stem, so it is constrained
// to characters that are safe to splice into a path on any platform.
package noteid

import "strings"

// Fallback is the identifier used when sanitization strips every character
// of the input.
const Fallback = "note"

// Sanitize reduces raw to the characters allowed in a filename stem:
// ASCII letters, digits, underscore and hyphen. Everything else, including
// path separators, dots, whitespace and non-ASCII runes, is dropped.
// The result is never empty; if nothing survives, Fallback is returned.
//
// Sanitize is the only barrier between externally supplied identifiers and
// the filesystem. Every id must pass through it before touching a path.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if safeRune(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Fallback
	}
	return b.String()
}

func safeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-':
		return true
	}
	return false
}
