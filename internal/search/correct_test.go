package search_test

import (
	"testing"

	"github.com/kaay-diunde/backend/internal/search"
)

func TestCorrectWordExactTable(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ipone", "iphone"},
		{"samung", "samsung"},
		{"galxy", "galaxy"},
		{"telphone", "téléphone"},
		{"chausure", "chaussure"},
		{"aiprods", "airpods"},
	}

	for _, c := range cases {
		if got := search.CorrectWord(c.in); got != c.want {
			t.Errorf("CorrectWord(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCorrectWordFuzzy(t *testing.T) {
	// "telefone" is in no table. The synonym key "telephone" sits at
	// distance 2, but the correction key "telepone" at distance 1 is
	// strictly closer and wins with its canonical form.
	if got := search.CorrectWord("telefone"); got != "téléphone" {
		t.Errorf("CorrectWord(telefone) = %q, want téléphone", got)
	}

	// Exact table hit has priority over any fuzzy candidate.
	if got := search.CorrectWord("Samung"); got != "samsung" {
		t.Errorf("CorrectWord(Samung) = %q, want samsung", got)
	}

	// A word already matching a synonym key comes back as that key.
	if got := search.CorrectWord("iPhone"); got != "iphone" {
		t.Errorf("CorrectWord(iPhone) = %q, want iphone", got)
	}
}

func TestCorrectWordNoMatch(t *testing.T) {
	// Nothing within threshold: the original word comes back untouched,
	// casing and accents included.
	for _, w := range []string{"xylophone", "Zzzzzz", "چاي"} {
		if got := search.CorrectWord(w); got != w {
			t.Errorf("CorrectWord(%q) = %q, want unchanged", w, got)
		}
	}
}

func TestCorrectWordTotal(t *testing.T) {
	// Must never panic, whatever the input.
	for _, w := range []string{"", " ", "!!!", "1234567890", "́"} {
		_ = search.CorrectWord(w)
	}
}

func TestCorrectQuery(t *testing.T) {
	// Each token corrected independently.
	if got := search.CorrectQuery("telephone samung"); got != "telephone samsung" {
		t.Errorf("CorrectQuery(telephone samung) = %q", got)
	}

	// No correction needed: the original string comes back verbatim,
	// casing preserved.
	if got := search.CorrectQuery("iPhone"); got != "iPhone" {
		t.Errorf("CorrectQuery(iPhone) = %q, want iPhone", got)
	}

	// Degenerate input passes through.
	for _, q := range []string{"", "   ", "\t\n"} {
		if got := search.CorrectQuery(q); got != q {
			t.Errorf("CorrectQuery(%q) = %q, want unchanged", q, got)
		}
	}
}
