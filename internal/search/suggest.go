package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kaay-diunde/backend/internal/catalog"
)

// SuggestionType discriminates autocomplete entries.
type SuggestionType string

const (
	SuggestionCategory SuggestionType = "category"
	SuggestionBrand    SuggestionType = "brand"
	SuggestionProduct  SuggestionType = "product"
)

// Suggestion is one typed autocomplete entry.
type Suggestion struct {
	Type     SuggestionType   `json:"type"`
	Label    string           `json:"label"`
	Category catalog.Category `json:"category,omitempty"`
	Product  *catalog.Product `json:"product,omitempty"`
}

const (
	// minSuggestionQuery is the smallest query length that produces
	// suggestions; shorter input is too noisy to complete.
	minSuggestionQuery = 2
	// maxProductSuggestions caps the product entries within the list.
	maxProductSuggestions = 6
	// maxSuggestions caps the whole list.
	maxSuggestions = 8
)

// Suggestions builds the capped autocomplete list for a partial query:
// matching categories first, then brands found in product names, then the
// best-scoring products. Ordering is significant; categories and brands
// surface before specific items.
func Suggestions(query string, products []catalog.Product) []Suggestion {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minSuggestionQuery {
		return nil
	}

	corrected := CorrectQuery(query)
	terms := expandTerms(corrected)

	var suggestions []Suggestion

	for _, cat := range MatchCategories(terms) {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionCategory,
			Label:    cat.Display(),
			Category: cat,
		})
	}

	for _, brand := range collectBrands(products) {
		normBrand := Normalize(brand)
		for _, term := range terms {
			if term == "" {
				continue
			}
			if strings.Contains(normBrand, term) || strings.Contains(term, normBrand) {
				suggestions = append(suggestions, Suggestion{
					Type:  SuggestionBrand,
					Label: brand,
				})
				break
			}
		}
	}

	type candidate struct {
		product catalog.Product
		score   int
	}
	var candidates []candidate
	for i := range products {
		if s := scoreProduct(&products[i], terms, suggestMode); s > 0 {
			candidates = append(candidates, candidate{products[i], s})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxProductSuggestions {
		candidates = candidates[:maxProductSuggestions]
	}
	for _, c := range candidates {
		product := c.product
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionProduct,
			Label:    product.Name,
			Category: product.Category,
			Product:  &product,
		})
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// collectBrands scans product names for known brand words, keeping the
// casing of the first occurrence and deduplicating on the lowercased form.
// Order follows the snapshot so repeated calls are deterministic.
func collectBrands(products []catalog.Product) []string {
	var brands []string
	seen := make(map[string]bool)
	for i := range products {
		for _, word := range strings.Fields(products[i].Name) {
			lower := strings.ToLower(word)
			if knownBrandSet[lower] && !seen[lower] {
				seen[lower] = true
				brands = append(brands, word)
			}
		}
	}
	return brands
}
