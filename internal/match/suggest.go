package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum Similarity for a name to be suggested.
const DefaultThreshold = 0.6

// Suggest returns up to limit candidates whose similarity to name reaches
// threshold, best first. Ties keep the candidates' original order.
func Suggest(name string, candidates []string, threshold float64, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= threshold {
			ranked = append(ranked, scored{c, s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
