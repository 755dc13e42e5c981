package workload

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDemandSampler_UnknownType(t *testing.T) {
	_, err := NewDemandSampler(DistSpec{Type: "zipf"})
	assert.Error(t, err)
}

func TestGaussianSampler_Clamps(t *testing.T) {
	sampler, err := NewDemandSampler(DistSpec{
		Type:   "gaussian",
		Params: map[string]float64{"mean": 100, "stddev": 1000, "min": 10, "max": 200},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := sampler.Sample(rng)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.LessOrEqual(t, v, 200.0)
	}
}

func TestGaussianSampler_DegenerateRange(t *testing.T) {
	sampler, err := NewDemandSampler(DistSpec{
		Type:   "gaussian",
		Params: map[string]float64{"mean": 50, "min": 42, "max": 42},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 42.0, sampler.Sample(rng))
}

func TestExponentialSampler_NonNegative(t *testing.T) {
	sampler, err := NewDemandSampler(DistSpec{
		Type:   "exponential",
		Params: map[string]float64{"mean": 80},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, sampler.Sample(rng), 0.0)
	}
}

func TestParetoLogNormalSampler_Positive(t *testing.T) {
	sampler, err := NewDemandSampler(DistSpec{
		Type:   "pareto-lognormal",
		Params: map[string]float64{"alpha": 2.5, "xm": 50, "mu": 4, "sigma": 0.5, "mix_weight": 0.4},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		assert.Greater(t, sampler.Sample(rng), 0.0)
	}
}

func TestFixedSampler(t *testing.T) {
	sampler, err := NewDemandSampler(DistSpec{
		Type:   "fixed",
		Params: map[string]float64{"value": 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sampler.Sample(nil), "fixed sampler ignores the RNG")
}

func TestSamplers_DeterministicPerSeed(t *testing.T) {
	sampler, err := NewDemandSampler(DistSpec{
		Type:   "gaussian",
		Params: map[string]float64{"mean": 100, "stddev": 20, "min": 0, "max": 500},
	})
	require.NoError(t, err)

	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		assert.Equal(t, sampler.Sample(a), sampler.Sample(b))
	}
}
