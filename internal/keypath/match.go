package keypath

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// closest picks the key to follow in place of a missing key. Prefix matches
// always win over fuzzy matches.
func closest(key string, candidates []string, cutoff float64) (string, bool) {
	if match, ok := prefixMatch(key, candidates); ok {
		return match, true
	}
	return fuzzyMatch(key, candidates, cutoff)
}

// prefixMatch returns the lexicographically smallest candidate that starts
// with key.
func prefixMatch(key string, candidates []string) (string, bool) {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, key) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return matches[0], true
}

// fuzzyMatch returns the candidate most similar to key with a score of at
// least cutoff. Equal scores go to the lexicographically smaller candidate.
func fuzzyMatch(key string, candidates []string, cutoff float64) (string, bool) {
	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		score := levenshtein.Similarity(key, c, nil)
		if score < cutoff {
			continue
		}
		if score > bestScore || score == bestScore && c < best {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}
