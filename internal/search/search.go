package search

import (
	"sort"

	"github.com/kaay-diunde/backend/internal/catalog"
)

// Options narrows SmartSearch results after scoring. The zero value applies
// no filter at all.
type Options struct {
	Category    catalog.Category
	InStockOnly bool
	PriceMin    float64
	PriceMax    float64
}

// Result is the outcome of one committed search.
type Result struct {
	// Products is the ranked, filtered product list, best match first.
	Products []catalog.Product
	// CorrectedQuery holds the spelling-corrected query when it differs
	// from what the shopper typed, empty otherwise.
	CorrectedQuery string
	// MatchedCategory is the category inferred from the query terms, empty
	// when none matched. Detection runs regardless of Options.Category.
	MatchedCategory catalog.Category
}

// SmartSearch runs the full pipeline over one immutable product snapshot:
// spelling correction, synonym expansion, category inference, weighted
// scoring, then post-filters. It never mutates products and never fails;
// degenerate input yields an empty Result.
func SmartSearch(query string, products []catalog.Product, opts Options) Result {
	var res Result

	corrected := CorrectQuery(query)
	if Normalize(corrected) != Normalize(query) {
		res.CorrectedQuery = corrected
	}

	terms := expandTerms(corrected)

	if cat, ok := MatchCategory(terms); ok {
		res.MatchedCategory = cat
	}

	type candidate struct {
		product catalog.Product
		score   int
	}
	var candidates []candidate
	for i := range products {
		if s := scoreProduct(&products[i], terms, searchMode); s > 0 {
			candidates = append(candidates, candidate{products[i], s})
		}
	}

	// Equal scores keep their snapshot order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	results := make([]catalog.Product, len(candidates))
	for i, c := range candidates {
		results[i] = c.product
	}

	// Post-filters narrow the already-sorted list in a fixed order and
	// never re-sort.
	if opts.Category != "" && opts.Category != catalog.CategoryAll {
		results = filterProducts(results, func(p *catalog.Product) bool {
			return p.Category == opts.Category
		})
	}
	if opts.InStockOnly {
		results = filterProducts(results, func(p *catalog.Product) bool {
			return p.InStock()
		})
	}
	if opts.PriceMin > 0 {
		results = filterProducts(results, func(p *catalog.Product) bool {
			return p.Price >= opts.PriceMin
		})
	}
	if opts.PriceMax > 0 {
		results = filterProducts(results, func(p *catalog.Product) bool {
			return p.Price <= opts.PriceMax
		})
	}

	res.Products = results
	return res
}

func filterProducts(products []catalog.Product, keep func(*catalog.Product) bool) []catalog.Product {
	kept := products[:0]
	for i := range products {
		if keep(&products[i]) {
			kept = append(kept, products[i])
		}
	}
	return kept
}
