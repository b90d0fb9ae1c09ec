package search

import (
	"strings"

	"github.com/kaay-diunde/backend/internal/catalog"
)

// categoryMatches reports whether any of the entry's labels, display name
// included, equals or contains (in either direction) any search term.
func categoryMatches(entry categoryEntry, terms []string) bool {
	labels := make([]string, 0, len(entry.Labels)+1)
	labels = append(labels, entry.Category.Display())
	labels = append(labels, entry.Labels...)

	for _, term := range terms {
		if term == "" {
			continue
		}
		for _, label := range labels {
			n := Normalize(label)
			if strings.Contains(n, term) || strings.Contains(term, n) {
				return true
			}
		}
	}
	return false
}

// MatchCategory infers at most one category from a set of normalized search
// terms. The first matching entry in table order wins; there is no
// multi-category detection and no ranking among categories.
func MatchCategory(terms []string) (catalog.Category, bool) {
	for _, entry := range categoryTable {
		if categoryMatches(entry, terms) {
			return entry.Category, true
		}
	}
	return "", false
}

// MatchCategories collects every category whose labels match the term set, in
// table order. Used by the suggestion builder, which surfaces all of them.
func MatchCategories(terms []string) []catalog.Category {
	var matched []catalog.Category
	for _, entry := range categoryTable {
		if categoryMatches(entry, terms) {
			matched = append(matched, entry.Category)
		}
	}
	return matched
}
