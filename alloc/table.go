package alloc

import (
	"fmt"
	"io"
	"strings"
)

// ShareOfInitial returns the claim's allocated share of the initial capacity
// as a percentage, or 0 if the initial capacity was 0.
func (r *Result) ShareOfInitial(c Claim) float64 {
	if r.InitialCapacity <= 0 {
		return 0
	}
	return c.Allocated / r.InitialCapacity * 100
}

// WriteTable renders the allocation as a fixed-width table, one row per
// claim in ranked order, followed by the capacity/value summary line.
func (r *Result) WriteTable(w io.Writer) {
	rule := strings.Repeat("-", 92)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "| %-24s | %-8s | %-12s | %-12s | %-18s |\n",
		"Claim", "Priority", "Demand", "Allocated", "Share of Total (%)")
	fmt.Fprintln(w, rule)
	for _, c := range r.Claims {
		fmt.Fprintf(w, "| %-24s | %-8d | %-12.2f | %-12.2f | %-18.2f |\n",
			c.Name, c.Priority, c.Demand, c.Allocated, r.ShareOfInitial(c))
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Capacity: %.2f | Used: %.2f | Value achieved: %.2f\n",
		r.InitialCapacity, r.CapacityUsed, r.ValueAchieved)
}
