package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// DemandSampler generates bandwidth demand samples.
type DemandSampler interface {
	// Sample returns a non-negative demand.
	Sample(rng *rand.Rand) float64
}

// GaussianSampler produces clamped Gaussian demands.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     float64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) float64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(s.max, math.Max(s.min, val))
	if clamped < 0 {
		return 0
	}
	return clamped
}

// ExponentialSampler produces exponentially-distributed demands.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.mean
}

// ParetoLogNormalSampler is a mixture of Pareto and LogNormal distributions,
// for heavy-tailed demand populations. With probability mixWeight, draw from
// Pareto(alpha, xm); otherwise LogNormal(mu, sigma).
type ParetoLogNormalSampler struct {
	alpha     float64 // Pareto shape
	xm        float64 // Pareto scale (minimum)
	mu        float64 // LogNormal mean of ln(X)
	sigma     float64 // LogNormal std dev of ln(X)
	mixWeight float64 // Probability of drawing from Pareto
}

func (s *ParetoLogNormalSampler) Sample(rng *rand.Rand) float64 {
	if rng.Float64() < s.mixWeight {
		// Pareto: X = xm / U^(1/alpha)
		u := rng.Float64()
		if u == 0 {
			u = math.SmallestNonzeroFloat64 // prevent division by zero → +Inf
		}
		return s.xm / math.Pow(u, 1.0/s.alpha)
	}
	// LogNormal: X = exp(mu + sigma * Z)
	z := rng.NormFloat64()
	return math.Exp(s.mu + s.sigma*z)
}

// FixedSampler always returns the same demand. Useful for degenerate
// classes (including zero-demand control claims) and tests.
type FixedSampler struct {
	value float64
}

func (s *FixedSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}

func param(params map[string]float64, key string, def float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return def
}

// NewDemandSampler creates a DemandSampler from a DistSpec.
// Valid types: "gaussian", "exponential", "pareto-lognormal", "fixed".
func NewDemandSampler(spec DistSpec) (DemandSampler, error) {
	switch spec.Type {
	case "gaussian":
		return &GaussianSampler{
			mean:   param(spec.Params, "mean", 100),
			stdDev: param(spec.Params, "stddev", 20),
			min:    param(spec.Params, "min", 0),
			max:    param(spec.Params, "max", math.MaxFloat64),
		}, nil
	case "exponential":
		return &ExponentialSampler{
			mean: param(spec.Params, "mean", 100),
		}, nil
	case "pareto-lognormal":
		return &ParetoLogNormalSampler{
			alpha:     param(spec.Params, "alpha", 2.5),
			xm:        param(spec.Params, "xm", 50),
			mu:        param(spec.Params, "mu", 4.0),
			sigma:     param(spec.Params, "sigma", 0.5),
			mixWeight: param(spec.Params, "mix_weight", 0.5),
		}, nil
	case "fixed":
		return &FixedSampler{
			value: param(spec.Params, "value", 0),
		}, nil
	default:
		return nil, fmt.Errorf("unknown demand distribution %q", spec.Type)
	}
}
