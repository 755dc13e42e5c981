package alloc

import (
	"fmt"
	"strconv"
)

// Ratio is the value density of a claim: priority per unit of demand.
// It is a tagged value rather than a float so that zero-demand claims with
// positive priority can be ranked strictly above every finite density
// without relying on a large sentinel constant.
type Ratio struct {
	value     float64
	unbounded bool
}

// FiniteRatio returns a finite ratio with the given density.
func FiniteRatio(v float64) Ratio {
	return Ratio{value: v}
}

// UnboundedRatio returns the ratio that sorts above every finite ratio.
// Assigned to claims that request nothing but still carry priority.
func UnboundedRatio() Ratio {
	return Ratio{unbounded: true}
}

// ComputeRatio derives the value density for a demand/priority pair:
//   - demand > 0: Finite(priority/demand)
//   - demand == 0, priority > 0: Unbounded (served first, consumes nothing)
//   - demand == 0, priority == 0: Finite(0)
//
// Pure function; callers are expected to have validated non-negativity.
func ComputeRatio(demand float64, priority int) Ratio {
	if demand > 0 {
		return FiniteRatio(float64(priority) / demand)
	}
	if priority > 0 {
		return UnboundedRatio()
	}
	return FiniteRatio(0)
}

// Unbounded reports whether the ratio is the infinite-density value.
func (r Ratio) Unbounded() bool {
	return r.unbounded
}

// Value returns the finite density. Zero for unbounded ratios; check
// Unbounded before relying on it.
func (r Ratio) Value() float64 {
	return r.value
}

// Greater reports whether r ranks strictly above other. Unbounded beats
// every finite ratio; two unbounded ratios compare equal.
func (r Ratio) Greater(other Ratio) bool {
	if r.unbounded {
		return !other.unbounded
	}
	if other.unbounded {
		return false
	}
	return r.value > other.value
}

func (r Ratio) String() string {
	if r.unbounded {
		return "inf"
	}
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}

// MarshalYAML renders the ratio for report output.
func (r Ratio) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// MarshalJSON renders the ratio for trace/report output. Unbounded ratios
// serialize as the string "inf" since JSON has no infinity literal.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.unbounded {
		return []byte(`"inf"`), nil
	}
	return []byte(fmt.Sprintf("%g", r.value)), nil
}
