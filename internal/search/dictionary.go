package search

import "github.com/kaay-diunde/backend/internal/catalog"

// The static tables below are the engine's only long-lived state. They are
// written once here and never mutated at runtime, so they are safe to share
// across concurrent searches. Slice order is the documented tie-break order
// for fuzzy correction and category inference: entries declared first win.

// synonymEntry links a vocabulary word to the terms a shopper might use
// interchangeably. Tables are not symmetric in storage (accented and plain
// spellings are separate keys), so lookups must check both sides.
type synonymEntry struct {
	Key    string
	Values []string
}

// synonymTable covers the French e-commerce vocabulary of the catalog.
var synonymTable = []synonymEntry{
	{"telephone", []string{"téléphone", "phone", "portable", "mobile", "smartphone", "gsm", "cellulaire"}},
	{"téléphone", []string{"telephone", "phone", "portable", "mobile", "smartphone", "gsm", "cellulaire"}},
	{"chaussure", []string{"basket", "sneaker", "sneakers", "soulier", "tennis", "chaussures"}},
	{"basket", []string{"chaussure", "sneaker", "sneakers", "tennis"}},
	{"ordinateur", []string{"pc", "laptop", "ordi", "computer", "portable"}},
	{"pc", []string{"ordinateur", "laptop", "ordi", "computer"}},
	{"ecouteur", []string{"écouteur", "écouteurs", "ecouteurs", "earphone", "earbuds", "casque", "airpods", "headphone"}},
	{"écouteur", []string{"ecouteur", "ecouteurs", "écouteurs", "earphone", "earbuds", "casque", "airpods"}},
	{"montre", []string{"watch", "smartwatch", "bracelet connecté"}},
	{"sac", []string{"sacoche", "sac à dos", "bag", "backpack", "valise"}},
	{"vetement", []string{"vêtement", "vêtements", "vetements", "habit", "habits", "fringue", "tenue"}},
	{"vêtement", []string{"vetement", "vêtements", "vetements", "habit", "habits", "fringue", "tenue"}},
	{"robe", []string{"dress", "tenue", "jupe"}},
	{"pantalon", []string{"jean", "jeans", "jogging", "survêtement", "pant"}},
	{"jean", []string{"pantalon", "jeans", "denim"}},
	{"samsung", []string{"galaxy"}},
	{"iphone", []string{"apple", "ios"}},
	{"apple", []string{"iphone", "macbook", "airpods", "ipad"}},
	{"rouge", []string{"red"}},
	{"bleu", []string{"blue"}},
	{"noir", []string{"black"}},
	{"blanc", []string{"white"}},
	{"vert", []string{"green"}},
	{"rose", []string{"pink"}},
	{"jaune", []string{"yellow"}},
	{"livre", []string{"livres", "book", "bouquin", "roman", "lecture"}},
	{"sport", []string{"sports", "fitness", "gym", "musculation", "exercice"}},
	{"maison", []string{"home", "intérieur", "décoration", "deco", "déco"}},
	{"mode", []string{"fashion", "style", "tendance"}},
	{"accessoire", []string{"accessoires", "bijou", "bijoux"}},
	{"electronique", []string{"électronique", "tech", "technologie", "hightech", "high-tech"}},
	{"électronique", []string{"electronique", "tech", "technologie", "hightech", "high-tech"}},
	{"promo", []string{"promotion", "solde", "réduction", "discount", "offre"}},
	{"promotion", []string{"promo", "solde", "réduction", "discount", "offre"}},
	{"pas cher", []string{"bon prix", "abordable", "économique", "budget"}},
	{"cher", []string{"premium", "luxe", "haut de gamme"}},
}

// correctionEntry maps a common misspelling to its canonical form.
type correctionEntry struct {
	From string
	To   string
}

// correctionTable lists curated typos for catalog-relevant vocabulary.
var correctionTable = []correctionEntry{
	{"ipone", "iphone"},
	{"iphon", "iphone"},
	{"iphne", "iphone"},
	{"ipohne", "iphone"},
	{"samung", "samsung"},
	{"samsun", "samsung"},
	{"samsug", "samsung"},
	{"sasmung", "samsung"},
	{"smasung", "samsung"},
	{"galxy", "galaxy"},
	{"galaxi", "galaxy"},
	{"galxay", "galaxy"},
	{"telphone", "téléphone"},
	{"telepone", "téléphone"},
	{"telephon", "téléphone"},
	{"teleohone", "téléphone"},
	{"telephne", "téléphone"},
	{"chausure", "chaussure"},
	{"chausures", "chaussure"},
	{"chaussures", "chaussure"},
	{"ordinatuer", "ordinateur"},
	{"ordinaeur", "ordinateur"},
	{"ecouteurs", "écouteur"},
	{"ecoutuer", "écouteur"},
	{"montres", "montre"},
	{"montr", "montre"},
	{"accesoire", "accessoire"},
	{"accesoires", "accessoire"},
	{"electronque", "electronique"},
	{"electronik", "electronique"},
	{"aiprods", "airpods"},
	{"airpod", "airpods"},
	{"baskets", "basket"},
	{"bascket", "basket"},
	{"snakers", "sneakers"},
	{"sneaker", "sneakers"},
	{"pantalons", "pantalon"},
	{"pantlon", "pantalon"},
	{"macrbook", "macbook"},
	{"macbok", "macbook"},
	{"livres", "livre"},
	{"livr", "livre"},
	{"robs", "robe"},
	{"robes", "robe"},
}

// corrections indexes correctionTable for the exact-match shortcut.
var corrections = func() map[string]string {
	m := make(map[string]string, len(correctionTable))
	for _, e := range correctionTable {
		m[e.From] = e.To
	}
	return m
}()

// categoryEntry lists the query words that identify a category. The display
// name is matched as well.
type categoryEntry struct {
	Category catalog.Category
	Labels   []string
}

// categoryTable drives category inference. At most one category is inferred
// per search: the first matching entry wins. Brand and device words sit in the
// electronics entry so queries like "samsung" still land on a category.
var categoryTable = []categoryEntry{
	{catalog.CategoryElectronics, []string{
		"électronique", "electronique", "tech", "technologie", "hightech", "high-tech",
		"téléphone", "telephone", "smartphone", "ordinateur", "samsung", "iphone", "apple",
	}},
	{catalog.CategoryFashion, []string{"mode", "fashion", "vêtement", "vetement", "habit", "tenue", "style"}},
	{catalog.CategoryAccessories, []string{"accessoire", "accessoires", "bijou", "bijoux"}},
	{catalog.CategoryHome, []string{"maison", "home", "intérieur", "décoration", "deco", "déco"}},
	{catalog.CategorySports, []string{"sport", "sports", "fitness", "gym"}},
	{catalog.CategoryBooks, []string{"livre", "livres", "book", "bouquin", "roman", "lecture"}},
}

// knownBrands lists brand words that may appear in product names. Matching is
// done on the lowercased name token; the suggestion keeps the name's casing.
var knownBrands = []string{
	"samsung", "apple", "iphone", "xiaomi", "huawei", "nike", "adidas", "puma",
	"hp", "dell", "lenovo", "asus", "sony", "jbl", "lg",
}

// knownBrandSet indexes knownBrands for token lookups.
var knownBrandSet = func() map[string]bool {
	m := make(map[string]bool, len(knownBrands))
	for _, b := range knownBrands {
		m[b] = true
	}
	return m
}()
