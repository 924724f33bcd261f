package alerr

import (
	"fmt"
	"strings"
)

// maxSuggestDistance catches a missing, extra or swapped character or two
// without pairing unrelated names.
const maxSuggestDistance = 3

// levenshtein computes the edit distance between a and b using two rows.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// FindClosestMatch returns the option nearest to input (case-insensitive),
// provided it is within the suggestion distance. Ties go to the earlier option.
func FindClosestMatch(input string, options []string) (string, bool) {
	needle := strings.ToLower(input)
	best := ""
	bestDist := maxSuggestDistance + 1

	for _, opt := range options {
		if d := levenshtein(needle, strings.ToLower(opt)); d < bestDist {
			bestDist = d
			best = opt
		}
	}

	return best, bestDist <= maxSuggestDistance
}

// SuggestSimilar returns a "did you mean 'X'?" string if a close match is found,
// or an empty string otherwise.
func SuggestSimilar(input string, options []string) string {
	if input == "" {
		return ""
	}
	if match, ok := FindClosestMatch(input, options); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}
