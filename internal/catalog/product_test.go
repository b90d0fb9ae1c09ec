package catalog_test

import (
	"testing"

	"github.com/kaay-diunde/backend/internal/catalog"
)

func TestCategoryDisplay(t *testing.T) {
	cases := map[catalog.Category]string{
		catalog.CategoryElectronics: "Électronique",
		catalog.CategoryFashion:     "Mode",
		catalog.CategoryAccessories: "Accessoires",
		catalog.CategoryHome:        "Maison",
		catalog.CategorySports:      "Sport",
		catalog.CategoryBooks:       "Livres",
	}

	for cat, want := range cases {
		if got := cat.Display(); got != want {
			t.Errorf("%s.Display() = %q, want %q", cat, got, want)
		}
	}

	// Unknown categories fall back to their raw value.
	if got := catalog.Category("misc").Display(); got != "misc" {
		t.Errorf("unknown Display() = %q, want misc", got)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, cat := range catalog.Categories() {
		if !cat.Valid() {
			t.Errorf("%s should be valid", cat)
		}
	}
	if catalog.CategoryAll.Valid() {
		t.Error("'all' is a filter sentinel, not a product category")
	}
	if catalog.Category("misc").Valid() {
		t.Error("unknown category reported valid")
	}
}

func TestProductDiscounted(t *testing.T) {
	cases := []struct {
		product catalog.Product
		want    bool
	}{
		{catalog.Product{Price: 100, OldPrice: 150}, true},
		{catalog.Product{Price: 100, OldPrice: 100}, false},
		{catalog.Product{Price: 100, OldPrice: 50}, false},
		{catalog.Product{Price: 100}, false},
	}

	for _, c := range cases {
		if got := c.product.Discounted(); got != c.want {
			t.Errorf("Discounted() with price=%v old=%v = %v, want %v",
				c.product.Price, c.product.OldPrice, got, c.want)
		}
	}
}

func TestProductInStock(t *testing.T) {
	if (&catalog.Product{Stock: 0}).InStock() {
		t.Error("stock 0 reported in stock")
	}
	if !(&catalog.Product{Stock: 3}).InStock() {
		t.Error("stock 3 reported out of stock")
	}
}
