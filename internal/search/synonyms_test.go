package search_test

import (
	"testing"

	"github.com/kaay-diunde/backend/internal/search"
)

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestSynonymsClosure(t *testing.T) {
	got := search.Synonyms("telephone")

	for _, want := range []string{"telephone", "phone", "portable", "mobile", "smartphone", "gsm", "cellulaire"} {
		if !contains(got, want) {
			t.Errorf("Synonyms(telephone) missing %q, got %v", want, got)
		}
	}
}

func TestSynonymsNormalizedAndDeduplicated(t *testing.T) {
	// "téléphone" and "telephone" are separate table keys each listing the
	// other; the closure must come back normalized and without duplicates.
	got := search.Synonyms("Téléphone")

	seen := make(map[string]int)
	for _, s := range got {
		seen[s]++
		if s != search.Normalize(s) {
			t.Errorf("Synonyms returned non-normalized term %q", s)
		}
	}
	for term, n := range seen {
		if n > 1 {
			t.Errorf("Synonyms returned %q %d times", term, n)
		}
	}
	if !contains(got, "telephone") {
		t.Errorf("Synonyms(Téléphone) missing telephone, got %v", got)
	}
}

func TestSynonymsValueSideMatch(t *testing.T) {
	// "galaxy" only appears on the value side of the samsung entry;
	// matching must still reach the key.
	got := search.Synonyms("galaxy")
	if !contains(got, "samsung") {
		t.Errorf("Synonyms(galaxy) missing samsung, got %v", got)
	}
	if got[0] != "galaxy" {
		t.Errorf("Synonyms must start with the word itself, got %v", got)
	}
}

func TestSynonymsUnknownWord(t *testing.T) {
	got := search.Synonyms("xylophone")
	if len(got) != 1 || got[0] != "xylophone" {
		t.Errorf("Synonyms(xylophone) = %v, want just the word", got)
	}
}
