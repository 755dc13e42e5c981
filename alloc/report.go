package alloc

import (
	"github.com/bwalloc/bwalloc/alloc/trace"
)

// TraceOf expands a Result into a full decision trace, one record per claim
// in ranked order. The remaining-pool column is reconstructed by replaying
// the allocations against the initial capacity.
func TraceOf(r *Result) *trace.AllocationTrace {
	t := trace.NewAllocationTrace(r.InitialCapacity)
	remaining := r.InitialCapacity
	for i, c := range r.Claims {
		remaining -= c.Allocated
		fraction := 1.0
		if c.Demand > 0 {
			fraction = c.Allocated / c.Demand
		}
		t.Record(trace.Record{
			Rank:           i,
			Name:           c.Name,
			Priority:       c.Priority,
			Demand:         c.Demand,
			Ratio:          c.Ratio.String(),
			Allocated:      c.Allocated,
			Fraction:       fraction,
			CreditedValue:  fraction * float64(c.Priority),
			RemainingAfter: remaining,
		})
	}
	return t
}
