package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a catalog plus a sequence
// of parse/convert steps with optional inline expectations.
type Scenario struct {
	// Name uniquely identifies this scenario. Doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is an optional CUE catalog directory, relative to the
	// scenario file. Empty means the built-in catalog.
	Catalog string `yaml:"catalog,omitempty"`

	// Steps contains the parse/convert steps in execution order.
	Steps []Step `yaml:"steps"`
}

// Step parses one quantity string and optionally converts it.
type Step struct {
	// Parse is the quantity string, "<number> <symbol>".
	Parse string `yaml:"parse"`

	// To is an optional target unit symbol. Empty means best-unit
	// display via the family's display table.
	To string `yaml:"to,omitempty"`

	// Expect is an optional expected rendering, e.g. "1.5 km".
	// When set, a mismatch fails the scenario.
	Expect string `yaml:"expect,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Returns an error if
// the file doesn't exist, is malformed, contains unknown fields (typos),
// or is missing required fields. A relative catalog path is resolved
// against the scenario file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "step:" vs "steps:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if s.Catalog != "" {
		if _, err := os.Stat(s.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("catalog directory not found: %s", s.Catalog)
		}
	}

	for i, step := range s.Steps {
		if step.Parse == "" {
			return fmt.Errorf("steps[%d]: parse is required", i)
		}
	}

	return nil
}
