package alloc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlanSpec is the top-level allocation plan configuration.
// Loaded from YAML via LoadPlanSpec(path).
type PlanSpec struct {
	Version  string      `yaml:"version"`
	Capacity float64     `yaml:"capacity"`
	Claims   []ClaimSpec `yaml:"claims"`
}

// ClaimSpec defines a single claim in a plan file.
type ClaimSpec struct {
	Name     string  `yaml:"name"`
	Demand   float64 `yaml:"demand"`
	Priority int     `yaml:"priority"`
}

// LoadPlanSpec reads and parses a PlanSpec YAML file.
func LoadPlanSpec(path string) (*PlanSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan spec: %w", err)
	}
	var spec PlanSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse plan spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks the spec for negative capacity, duplicate claim names and
// invalid claims. An empty claim list is valid (the run just reports an
// empty table).
func (s *PlanSpec) Validate() error {
	if s.Capacity < 0 {
		return fmt.Errorf("negative capacity %v", s.Capacity)
	}
	seen := make(map[string]bool, len(s.Claims))
	for i, c := range s.Claims {
		if c.Name == "" {
			return fmt.Errorf("claim %d: empty name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("claim %d: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true
		if _, err := NewClaim(c.Name, c.Demand, c.Priority); err != nil {
			return err
		}
	}
	return nil
}

// BuildClaims converts the spec's claim list into validated Claims with
// ratios computed.
func (s *PlanSpec) BuildClaims() ([]Claim, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan spec: %w", err)
	}
	claims := make([]Claim, 0, len(s.Claims))
	for _, cs := range s.Claims {
		c, err := NewClaim(cs.Name, cs.Demand, cs.Priority)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, nil
}
