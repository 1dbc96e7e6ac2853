package match

import (
	"strings"
	"unicode"
)

// Variants generates the casing variations of an app name that are tried
// against the window enumerator, in order: the literal query, lowercase,
// capitalized, uppercase, and title case. Duplicates collapse to their first
// occurrence so the enumerator is never asked the same name twice.
func Variants(query string) []string {
	candidates := []string{
		query,
		strings.ToLower(query),
		capitalize(query),
		strings.ToUpper(query),
		titleCase(query),
	}

	seen := make(map[string]bool, len(candidates))
	variants := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			variants = append(variants, c)
		}
	}
	return variants
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest, treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
