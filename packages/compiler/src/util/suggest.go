package util

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ClosestMatch returns the candidate closest to target, or "" if none is close.
// Candidates within a small edit distance of target win, nearest first; failing
// that, the tightest candidate that contains target's letters in order.
// Comparison ignores case.
func ClosestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	if match := nearestByEdits(target, candidates); match != "" {
		return match
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	return ranks[0].Target
}

// nearestByEdits picks the candidate with the fewest edits, keeping candidate
// order on ties. An edit count reaching the length of either name is no match.
func nearestByEdits(target string, candidates []string) string {
	folded := strings.ToLower(target)
	limit := (len(folded) + 1) / 2
	best, bestDistance := "", limit+1
	for _, candidate := range candidates {
		distance := fuzzy.LevenshteinDistance(folded, strings.ToLower(candidate))
		if distance >= len(folded) || distance >= len(candidate) {
			continue
		}
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

// DidYouMean formats a hint for an unknown name, or "" when nothing matches.
func DidYouMean(target string, candidates []string) string {
	match := ClosestMatch(target, candidates)
	if match == "" || match == target {
		return ""
	}
	return fmt.Sprintf(" (did you mean '%s'?)", match)
}
