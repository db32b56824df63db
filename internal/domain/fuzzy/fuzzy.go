// Package fuzzy implements approximate string matching for autocomplete.
// Scores combine substring containment (always a perfect match) with
// normalized Levenshtein similarity gated by a threshold.
package fuzzy

import "strings"

// DefaultThreshold is the minimum similarity for a non-substring match.
const DefaultThreshold = 0.6

// Match scores candidate against query and returns a value in [0,1].
// A case-insensitive substring hit scores exactly 1.0. Otherwise the
// normalized edit-distance similarity is returned when it meets the
// threshold, and 0 when it does not. Callers must treat 0 as "excluded",
// not as a low-quality match.
//
// Pure function, safe for concurrent use.
func Match(query, candidate string, threshold float64) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)

	if strings.Contains(c, q) {
		return 1.0
	}

	longest := len(q)
	if len(c) > longest {
		longest = len(c)
	}
	similarity := 1.0 - float64(Distance(q, c))/float64(longest)
	if similarity >= threshold {
		return similarity
	}
	return 0
}

// Distance computes the Levenshtein edit distance between a and b.
// Insertion, deletion, and substitution each cost 1. Uses the two-row
// DP formulation; O(len(a)*len(b)) time, O(len(b)) space.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
