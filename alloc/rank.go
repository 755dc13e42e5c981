package alloc

import (
	"sort"
)

// Rank returns the claims in greedy allocation order: descending by ratio,
// unbounded ratios first. The sort is stable, so claims with equal ratios
// keep their original relative order — that is the documented tie-break,
// and it makes ranking idempotent.
//
// The input slice is not modified; the result is a permutation of it.
func Rank(claims []Claim) []Claim {
	ranked := make([]Claim, len(claims))
	copy(ranked, claims)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Ratio.Greater(ranked[j].Ratio)
	})
	return ranked
}
