package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes their combining marks, so
// "téléphone" compares equal to "telephone".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text, strips diacritics and trims surrounding
// whitespace. It is the canonical comparison form used by every other part of
// the engine and never fails: characters without combining marks pass through
// untouched.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return strings.TrimSpace(lowered)
	}
	return strings.TrimSpace(stripped)
}
