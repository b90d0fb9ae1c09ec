package catalog

import "time"

// Category identifies one of the storefront's fixed product categories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryAccessories Category = "accessories"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
	CategoryBooks       Category = "books"

	// CategoryAll is accepted by search filters to mean "no category filter".
	CategoryAll Category = "all"
)

// displayNames maps each category to its storefront display label.
var displayNames = map[Category]string{
	CategoryElectronics: "Électronique",
	CategoryFashion:     "Mode",
	CategoryAccessories: "Accessoires",
	CategoryHome:        "Maison",
	CategorySports:      "Sport",
	CategoryBooks:       "Livres",
}

// Display returns the label shown to shoppers for this category.
func (c Category) Display() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid reports whether c is one of the known product categories.
func (c Category) Valid() bool {
	_, ok := displayNames[c]
	return ok
}

// Categories returns the known categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFashion,
		CategoryAccessories,
		CategoryHome,
		CategorySports,
		CategoryBooks,
	}
}

// Product is one catalog item as served by the storefront functions API.
// The search engine treats product lists as immutable snapshots.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	OldPrice    float64   `json:"old_price,omitempty"`
	Category    Category  `json:"category"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	Featured    bool      `json:"featured,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// InStock reports whether the product can currently be sold.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Discounted reports whether the product is on promotion. The catalog keeps a
// single pre-discount price field; any percentage representation is reconciled
// upstream.
func (p *Product) Discounted() bool {
	return p.OldPrice > p.Price
}
