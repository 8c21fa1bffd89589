// Package similarity scores how alike two short strings are, for fuzzy brand
// name matching.
package similarity

import "strings"

// Score returns a case-insensitive similarity in [0, 1]. Identical strings
// score 1, a strict substring relationship scores 0.8, and anything else is
// scored by normalized Levenshtein distance. Empty input scores 0.
func Score(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	maxLen := max(len([]rune(a)), len([]rune(b)))
	return float64(maxLen-Levenshtein(a, b)) / float64(maxLen)
}

// Levenshtein returns the unit-cost edit distance between a and b, counted in
// runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
