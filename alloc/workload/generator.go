package workload

import (
	"fmt"
	"math/rand"

	"github.com/bwalloc/bwalloc/alloc"
)

// GenerateClaims creates a claim population from a Spec.
// Deterministic given the same spec and seed. Class counts follow the
// normalized fractions, with rounding leftovers assigned to classes in
// declaration order. Claim names are "<class>-<n>".
func GenerateClaims(spec *Spec) ([]alloc.Claim, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}

	counts := classCounts(spec.Classes, spec.TotalClaims)
	rng := rand.New(rand.NewSource(spec.Seed))

	claims := make([]alloc.Claim, 0, spec.TotalClaims)
	for i := range spec.Classes {
		class := &spec.Classes[i]
		sampler, err := NewDemandSampler(class.Demand)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", class.Name, err)
		}

		// Per-class RNG derived from the main stream so adding a class
		// does not reshuffle every other class's samples.
		classRNG := rand.New(rand.NewSource(rng.Int63()))
		for n := 0; n < counts[i]; n++ {
			demand := sampler.Sample(classRNG)
			claim, err := alloc.NewClaim(fmt.Sprintf("%s-%d", class.Name, n), demand, class.Priority)
			if err != nil {
				return nil, fmt.Errorf("class %q claim %d: %w", class.Name, n, err)
			}
			claims = append(claims, claim)
		}
	}
	return claims, nil
}

// classCounts apportions total across classes proportionally to their
// normalized fractions: floor first, then leftovers one per class in order.
func classCounts(classes []ClassSpec, total int) []int {
	fracSum := 0.0
	for _, c := range classes {
		fracSum += c.Fraction
	}

	counts := make([]int, len(classes))
	assigned := 0
	for i, c := range classes {
		counts[i] = int(float64(total) * c.Fraction / fracSum)
		assigned += counts[i]
	}
	for i := 0; assigned < total; i = (i + 1) % len(classes) {
		counts[i]++
		assigned++
	}
	return counts
}
