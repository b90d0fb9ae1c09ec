package search

import "strings"

// Synonyms returns the normalized synonym closure of a word: the word itself
// plus every term linked to it by the synonym table, deduplicated in
// first-seen order. The table stores accented and plain spellings as separate
// keys, so both the key and the value side of each entry are checked to make
// the lookup effectively symmetric.
func Synonyms(word string) []string {
	normalized := Normalize(word)
	result := []string{normalized}
	seen := map[string]bool{normalized: true}

	add := func(term string) {
		n := Normalize(term)
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}

	for _, entry := range synonymTable {
		matched := Normalize(entry.Key) == normalized
		if !matched {
			for _, v := range entry.Values {
				if Normalize(v) == normalized {
					matched = true
					break
				}
			}
		}
		if matched {
			add(entry.Key)
			for _, v := range entry.Values {
				add(v)
			}
		}
	}

	return result
}

// expandTerms corrects nothing; it tokenizes an already-corrected query and
// unions the synonym closures of every token into one deduplicated term set.
func expandTerms(corrected string) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(corrected) {
		for _, term := range Synonyms(token) {
			if term != "" && !seen[term] {
				seen[term] = true
				terms = append(terms, term)
			}
		}
	}
	return terms
}
