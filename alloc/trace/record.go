// Package trace provides per-decision allocation records for offline
// analysis. This package has no dependencies on alloc/ — it stores pure
// data types plus their serializers.
package trace

// Record captures the outcome for one claim in the allocation pass.
type Record struct {
	Rank           int     `json:"rank"`            // 0-based position in the greedy order
	Name           string  `json:"name"`
	Priority       int     `json:"priority"`
	Demand         float64 `json:"demand"`
	Ratio          string  `json:"ratio"`           // "inf" for zero-demand positive-priority claims
	Allocated      float64 `json:"allocated"`
	Fraction       float64 `json:"fraction"`        // allocated/demand; 1 for zero-demand claims
	CreditedValue  float64 `json:"credited_value"`  // priority scaled by fraction
	RemainingAfter float64 `json:"remaining_after"` // pool left once this claim was settled
}

// Outcome classifies a record for summary counting.
type Outcome string

const (
	OutcomeFull    Outcome = "full"    // demand fully met (includes zero-demand claims)
	OutcomePartial Outcome = "partial" // the claim that exhausted the pool
	OutcomeStarved Outcome = "starved" // positive demand, nothing allocated
)

// Outcome derives the record's classification from its fields.
func (r Record) Outcome() Outcome {
	switch {
	case r.Allocated >= r.Demand:
		return OutcomeFull
	case r.Allocated > 0:
		return OutcomePartial
	default:
		return OutcomeStarved
	}
}
