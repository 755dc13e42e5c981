package trace

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates statistics from an AllocationTrace.
type Summary struct {
	TotalClaims    int
	FullCount      int
	PartialCount   int
	StarvedCount   int
	TotalAllocated float64
	TotalValue     float64
	MeanAllocated  float64
	MedianShare    float64 // median allocated share of capacity, in [0,1]
	P90Share       float64
}

// Summarize computes aggregate statistics from a trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *AllocationTrace) *Summary {
	summary := &Summary{}
	if t == nil || len(t.Records) == 0 {
		return summary
	}

	summary.TotalClaims = len(t.Records)
	shares := make([]float64, 0, len(t.Records))
	for _, r := range t.Records {
		switch r.Outcome() {
		case OutcomeFull:
			summary.FullCount++
		case OutcomePartial:
			summary.PartialCount++
		case OutcomeStarved:
			summary.StarvedCount++
		}
		summary.TotalAllocated += r.Allocated
		summary.TotalValue += r.CreditedValue
		if t.Capacity > 0 {
			shares = append(shares, r.Allocated/t.Capacity)
		}
	}
	summary.MeanAllocated = summary.TotalAllocated / float64(summary.TotalClaims)

	if len(shares) > 0 {
		sort.Float64s(shares)
		summary.MedianShare = stat.Quantile(0.5, stat.Empirical, shares, nil)
		summary.P90Share = stat.Quantile(0.9, stat.Empirical, shares, nil)
	}
	return summary
}
