package alloc

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Result holds the outcome of one allocation pass.
type Result struct {
	Claims          []Claim `json:"claims"` // ranked order, Allocated filled in
	InitialCapacity float64 `json:"initial_capacity"`
	CapacityUsed    float64 `json:"capacity_used"`
	Remaining       float64 `json:"remaining"`
	ValueAchieved   float64 `json:"value_achieved"` // sum of credited (possibly fractional) priorities
}

// Allocate walks the ranked claims subtracting from the remaining pool until
// it is exhausted. A claim whose demand fits the remaining pool is fully
// satisfied and credits its full priority; the claim that exhausts the pool
// is partially satisfied and credits a proportional fraction of its
// priority; claims after that keep Allocated = 0.
//
// Zero-demand claims are always fully satisfiable: they consume nothing and
// credit their full priority, which is why ranking places them first.
//
// The input slice is not modified. Guarantees on the returned Result:
// sum(Allocated) <= capacity, 0 <= Allocated <= Demand per claim, and
// ValueAchieved is the fractional-knapsack optimum for the given order.
func Allocate(ranked []Claim, capacity float64) (Result, error) {
	if capacity < 0 {
		return Result{}, fmt.Errorf("negative capacity %v", capacity)
	}

	claims := make([]Claim, len(ranked))
	copy(claims, ranked)

	remaining := capacity
	value := 0.0
	for i := range claims {
		if remaining <= 0 && claims[i].Demand > 0 {
			break
		}
		c := &claims[i]
		if c.Demand <= remaining {
			c.Allocated = c.Demand
			remaining -= c.Demand
			value += float64(c.Priority)
			logrus.Debugf("claim %q: full fill %v (remaining %v)", c.Name, c.Allocated, remaining)
		} else {
			c.Allocated = remaining
			value += (remaining / c.Demand) * float64(c.Priority)
			remaining = 0
			logrus.Debugf("claim %q: partial fill %v", c.Name, c.Allocated)
		}
	}

	return Result{
		Claims:          claims,
		InitialCapacity: capacity,
		CapacityUsed:    capacity - remaining,
		Remaining:       remaining,
		ValueAchieved:   value,
	}, nil
}

// Plan validates, ranks and allocates in one call. This is the entry point
// the CLI uses; Rank and Allocate stay exported for callers that need the
// intermediate order.
func Plan(claims []Claim, capacity float64) (Result, error) {
	if err := ValidateClaims(claims); err != nil {
		return Result{}, err
	}
	return Allocate(Rank(claims), capacity)
}
