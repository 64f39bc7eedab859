// Package similarity scores how closely two player names match on a 0..100 scale.
package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/riskibarqy/paddle-roster/internal/platform/names"
)

const (
	ScoreExact     = 100
	ScoreSubstring = 90

	// MatchThreshold is the minimum score for a lookup to report a best match.
	MatchThreshold = 70
)

// Score returns 100 on normalized equality, 90 when either normalized string contains
// the other, otherwise the Levenshtein ratio scaled to 0..100.
func Score(query, candidate string) int {
	q := names.Normalize(query)
	c := names.Normalize(candidate)

	if q == c {
		return ScoreExact
	}
	if q == "" || c == "" {
		return 0
	}
	if strings.Contains(q, c) || strings.Contains(c, q) {
		return ScoreSubstring
	}

	maxLen := max(utf8.RuneCountInString(q), utf8.RuneCountInString(c))
	dist := fuzzy.LevenshteinDistance(q, c)
	ratio := 1 - float64(dist)/float64(maxLen)
	if ratio < 0 {
		return 0
	}
	return int(math.Round(ratio * 100))
}

// Candidate is one scored entry of a ranking.
type Candidate[T any] struct {
	Item  T
	Score int
}

// Rank scores every item against query, sorted by score descending. Ties keep input order.
func Rank[T any](query string, items []T, key func(T) string) []Candidate[T] {
	out := make([]Candidate[T], 0, len(items))
	for _, item := range items {
		out = append(out, Candidate[T]{Item: item, Score: Score(query, key(item))})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
