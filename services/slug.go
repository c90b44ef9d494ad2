package services

import (
	"strings"
	"unicode"
)

// Slugify derives a post's URL identifier from its title: whitespace becomes
// hyphens, letters are lowercased, and everything outside [a-z0-9-] is
// dropped. Deterministic and idempotent.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte('-')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
