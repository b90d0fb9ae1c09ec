package search

import (
	"sort"

	"github.com/kaay-diunde/backend/internal/catalog"
)

const (
	// maxSimilar caps the fallback recommendation list.
	maxSimilar = 4

	// featuredWeightCategory applies when a category was inferred from the
	// query; featuredWeightGlobal applies when there was no relevance
	// signal at all, where featured items are favored more strongly.
	featuredWeightCategory = 2
	featuredWeightGlobal   = 3
	discountWeight         = 1
)

// SimilarProducts recommends up to four in-stock products for a query that
// produced no search results. When a category can be inferred from the query
// the recommendations come from that category; otherwise they come from the
// whole catalog, featured items first.
func SimilarProducts(query string, products []catalog.Product) []catalog.Product {
	terms := expandTerms(CorrectQuery(query))

	if cat, ok := MatchCategory(terms); ok {
		pool := collectInStock(products, cat)
		return topByPriority(pool, featuredWeightCategory)
	}

	pool := collectInStock(products, "")
	return topByPriority(pool, featuredWeightGlobal)
}

// collectInStock copies the sellable products, optionally limited to one
// category, so sorting never touches the caller's snapshot.
func collectInStock(products []catalog.Product, cat catalog.Category) []catalog.Product {
	var pool []catalog.Product
	for i := range products {
		if !products[i].InStock() {
			continue
		}
		if cat != "" && products[i].Category != cat {
			continue
		}
		pool = append(pool, products[i])
	}
	return pool
}

func topByPriority(pool []catalog.Product, featuredWeight int) []catalog.Product {
	priority := func(p *catalog.Product) int {
		score := 0
		if p.Featured {
			score += featuredWeight
		}
		if p.Discounted() {
			score += discountWeight
		}
		return score
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return priority(&pool[i]) > priority(&pool[j])
	})
	if len(pool) > maxSimilar {
		pool = pool[:maxSimilar]
	}
	return pool
}
