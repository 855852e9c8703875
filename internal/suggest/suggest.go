// Package suggest proposes corrections for mistyped command names using
// Levenshtein edit distance.
package suggest

import (
	"github.com/agnivade/levenshtein"
)

// DefaultMaxDistance is the threshold used for "did you mean" hints on unknown commands.
const DefaultMaxDistance = 2

// Similar returns every candidate within maxDistance edits of name.
//
// Matches keep the order of candidates; they are not ranked by distance. A
// caller that surfaces only the first match therefore gets the first
// qualifying candidate in its own iteration order, not necessarily the closest.
func Similar(name string, candidates []string, maxDistance int) []string {
	matches := make([]string, 0)
	for _, c := range candidates {
		if levenshtein.ComputeDistance(name, c) <= maxDistance {
			matches = append(matches, c)
		}
	}
	return matches
}
