package search

import (
	"strings"
	"unicode/utf8"

	"github.com/kaay-diunde/backend/internal/catalog"
)

// Relevance weights. Name matches are the strongest signal (substring >
// word prefix > fuzzy word); description and category label matches only
// corroborate. The stock and discount bonuses are not relevance signals at
// all: they nudge the suggestion list toward sellable items and are never
// applied on the committed-search path.
const (
	weightNameSubstring  = 10
	weightNameWordPrefix = 5
	weightNameFuzzyWord  = 3
	weightDescription    = 3
	weightCategoryLabel  = 2

	bonusInStock    = 1
	bonusDiscounted = 1

	// fuzzyWordDistance bounds the edit distance for the fuzzy name-word
	// weight; terms of fuzzyMinTermLength runes or fewer never fuzzy-match.
	fuzzyWordDistance  = 2
	fuzzyMinTermLength = 3
)

// scoreMode selects which parts of the weight policy apply.
type scoreMode int

const (
	// searchMode scores committed searches: text weights, fuzzy included,
	// no static bonuses.
	searchMode scoreMode = iota
	// suggestMode scores the autocomplete list: text weights without the
	// fuzzy term, plus the per-product stock and discount bonuses.
	suggestMode
)

// scoreProduct accumulates the weighted relevance of one product against the
// expanded term set. Weights are additive across terms. A total of zero means
// "no match" and callers exclude the product entirely.
func scoreProduct(p *catalog.Product, terms []string, mode scoreMode) int {
	name := Normalize(p.Name)
	description := Normalize(p.Description)
	label := Normalize(p.Category.Display())
	nameWords := strings.Fields(name)

	score := 0
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(name, term) {
			score += weightNameSubstring
		}
		for _, w := range nameWords {
			if strings.HasPrefix(w, term) {
				score += weightNameWordPrefix
				break
			}
		}
		if mode == searchMode && utf8.RuneCountInString(term) > fuzzyMinTermLength {
			for _, w := range nameWords {
				if Levenshtein(w, term) <= fuzzyWordDistance {
					score += weightNameFuzzyWord
					break
				}
			}
		}
		if strings.Contains(description, term) {
			score += weightDescription
		}
		if strings.Contains(label, term) {
			score += weightCategoryLabel
		}
	}

	if mode == suggestMode {
		if p.InStock() {
			score += bonusInStock
		}
		if p.Discounted() {
			score += bonusDiscounted
		}
	}

	return score
}
