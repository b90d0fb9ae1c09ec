package search

import "strings"

const (
	// synonymFuzzyDistance is the maximum edit distance accepted when
	// matching a word against synonym keys.
	synonymFuzzyDistance = 2
	// correctionFuzzyDistance is the stricter bound used against
	// correction keys, which may override a synonym match when closer.
	correctionFuzzyDistance = 1
)

// CorrectWord maps a single token to its most likely intended form. Exact
// hits in the correction table win outright; otherwise the word is fuzzy
// matched against the synonym keys and then the correction keys, keeping the
// closest candidate found in table order. When nothing lands within the
// thresholds the word is returned exactly as given, casing and accents
// included.
func CorrectWord(word string) string {
	normalized := Normalize(word)
	if normalized == "" {
		return word
	}

	if canonical, ok := corrections[normalized]; ok {
		return canonical
	}

	best := word
	bestDist := synonymFuzzyDistance + 1

	for _, entry := range synonymTable {
		dist := Levenshtein(normalized, Normalize(entry.Key))
		if dist < bestDist && dist <= synonymFuzzyDistance {
			bestDist = dist
			best = entry.Key
		}
	}

	for _, entry := range correctionTable {
		dist := Levenshtein(normalized, entry.From)
		if dist < bestDist && dist <= correctionFuzzyDistance {
			bestDist = dist
			best = entry.To
		}
	}

	return best
}

// CorrectQuery corrects each whitespace-separated token of a query
// independently. The corrected string is returned only when it differs from
// the lowercased original; otherwise the query comes back verbatim, original
// casing and spacing preserved. Empty and whitespace-only queries pass
// through unchanged.
func CorrectQuery(query string) string {
	words := strings.Fields(query)
	if len(words) == 0 {
		return query
	}

	corrected := make([]string, len(words))
	for i, w := range words {
		corrected[i] = CorrectWord(w)
	}

	result := strings.Join(corrected, " ")
	if result != strings.ToLower(query) {
		return result
	}
	return query
}
