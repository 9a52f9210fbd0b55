package chains

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a restaurant name into a grouping key:
// lowercased, punctuation stripped, whitespace collapsed. Matching is
// exact on the normalized form; near-duplicates that differ by a store
// number or suffix stay separate chains.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSpace := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
			// punctuation is dropped without breaking the word, so
			// "Domino's" and "Dominos" share a key
		}
	}
	return b.String()
}
