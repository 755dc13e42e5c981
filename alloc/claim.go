package alloc

import (
	"fmt"
)

// Claim represents a single competing demand on the shared bandwidth pool.
type Claim struct {
	Name      string  `json:"name"`      // free-text identifier of the user or task
	Demand    float64 `json:"demand"`    // bandwidth requested (the knapsack weight)
	Priority  int     `json:"priority"`  // value of serving the claim (the knapsack value)
	Ratio     Ratio   `json:"ratio"`     // priority per unit demand, derived once at construction
	Allocated float64 `json:"allocated"` // bandwidth granted, written by Allocate
}

// NewClaim builds a validated claim with its ratio computed.
// Negative demand or priority is rejected, never clamped: a negative input
// is always a caller bug and clamping would hide it.
func NewClaim(name string, demand float64, priority int) (Claim, error) {
	if demand < 0 {
		return Claim{}, fmt.Errorf("claim %q: negative demand %v", name, demand)
	}
	if priority < 0 {
		return Claim{}, fmt.Errorf("claim %q: negative priority %d", name, priority)
	}
	return Claim{
		Name:     name,
		Demand:   demand,
		Priority: priority,
		Ratio:    ComputeRatio(demand, priority),
	}, nil
}

// ValidateClaims checks every claim for negative demand or priority and
// recomputes ratios so that claims built directly (struct literals, YAML
// decoding) carry a consistent Ratio before ranking.
func ValidateClaims(claims []Claim) error {
	for i := range claims {
		c, err := NewClaim(claims[i].Name, claims[i].Demand, claims[i].Priority)
		if err != nil {
			return fmt.Errorf("claim %d: %w", i, err)
		}
		c.Allocated = 0
		claims[i] = c
	}
	return nil
}

func (c Claim) String() string {
	return fmt.Sprintf("%s(demand=%v, priority=%d, ratio=%s)", c.Name, c.Demand, c.Priority, c.Ratio)
}
