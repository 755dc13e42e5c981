// Package workload generates synthetic claim populations for allocation
// experiments: per-class demand distributions with a deterministic seed.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the top-level synthetic workload configuration.
// Loaded from YAML via LoadSpec(path).
type Spec struct {
	Version     string      `yaml:"version"`
	Seed        int64       `yaml:"seed"`
	Capacity    float64     `yaml:"capacity"`
	TotalClaims int         `yaml:"total_claims"`
	Classes     []ClassSpec `yaml:"classes"`
}

// ClassSpec defines one class of claims: its priority, its share of the
// population and its demand distribution.
type ClassSpec struct {
	Name     string   `yaml:"name"`
	Priority int      `yaml:"priority"`
	Fraction float64  `yaml:"fraction"`
	Demand   DistSpec `yaml:"demand"`
}

// DistSpec parameterizes a demand distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// LoadSpec reads and parses a workload Spec YAML file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload spec: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse workload spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks structural constraints: positive claim total, at least
// one class, non-negative capacity/priorities, positive fractions, and a
// recognized demand distribution per class.
func (s *Spec) Validate() error {
	if s.TotalClaims <= 0 {
		return fmt.Errorf("total_claims must be positive, got %d", s.TotalClaims)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("negative capacity %v", s.Capacity)
	}
	if len(s.Classes) == 0 {
		return fmt.Errorf("at least one class is required")
	}
	for i, class := range s.Classes {
		if class.Name == "" {
			return fmt.Errorf("class %d: empty name", i)
		}
		if class.Priority < 0 {
			return fmt.Errorf("class %q: negative priority %d", class.Name, class.Priority)
		}
		if class.Fraction <= 0 {
			return fmt.Errorf("class %q: fraction must be positive, got %v", class.Name, class.Fraction)
		}
		if _, err := NewDemandSampler(class.Demand); err != nil {
			return fmt.Errorf("class %q: %w", class.Name, err)
		}
	}
	return nil
}
