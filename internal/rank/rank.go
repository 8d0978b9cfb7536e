package rank

import (
	"sort"

	"dealhunt-engine/internal/domain"
)

// Top sorts by score descending and truncates to n. The sort is stable:
// listings with equal scores keep their aggregator order. The input slice
// is not modified.
func Top(in []domain.ScoredListing, n int) []domain.ScoredListing {
	out := make([]domain.ScoredListing, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
