package match

import (
	"cmp"
	"slices"
)

const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.7
	// DefaultMaxSuggestions caps the number of names returned by Suggest.
	DefaultMaxSuggestions = 3
)

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates that look like name, best match
// first, ties broken by name. A limit <= 0 means DefaultMaxSuggestions.
// The exact name itself is never suggested.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxSuggestions
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := max(
			NormalizedLevenshteinScore(name, c),
			NormalizedLevenshteinScoreWithPrefixStrip(name, c),
		)
		if score >= DefaultMinScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		return cmp.Or(cmp.Compare(b.score, a.score), cmp.Compare(a.name, b.name))
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, s := range ranked {
		if len(out) == limit {
			break
		}

		out = append(out, s.name)
	}

	return out
}
