package harness

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/quantcheck/quantcheck/internal/config"
)

// Suite is a set of example regressions loaded from YAML.
type Suite struct {
	Examples []Example `yaml:"examples"`
}

// Example describes one demo program run and the checks against it.
type Example struct {
	Name     string          `yaml:"name"`
	Command  string          `yaml:"command"`
	Args     []string        `yaml:"args"`
	Dir      string          `yaml:"dir"`       // Working directory (suite default applies when empty)
	Env      []string        `yaml:"env"`       // Extra KEY=VALUE entries appended to the parent env
	Timeout  config.Duration `yaml:"timeout"`   // Per-example timeout (suite default applies when zero)
	ExitCode int             `yaml:"exit_code"` // Expected exit code

	Stdout    []Assertion `yaml:"stdout"`
	Stderr    []Assertion `yaml:"stderr"`
	Artifacts []Artifact  `yaml:"artifacts"`
}

// Assertion is a textual pattern check over a captured stream. Exactly one
// field is set.
type Assertion struct {
	Contains    string `yaml:"contains"`
	NotContains string `yaml:"not_contains"`
	Regexp      string `yaml:"regexp"`
}

// Artifact is a file an example is expected to produce. The harness treats
// its content as opaque and checks only existence and size.
type Artifact struct {
	Path     string `yaml:"path"`
	MinBytes int64  `yaml:"min_bytes"` // Minimum size; zero still requires a non-empty file
}

// LoadSuite reads a suite YAML file, expanding ${VAR} environment
// references first so suites can point at run-specific directories.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var s Suite
	if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
		return nil, fmt.Errorf("parse suite yaml: %w", err)
	}
	if len(s.Examples) == 0 {
		return nil, fmt.Errorf("suite %s lists no examples", path)
	}

	seen := make(map[string]bool, len(s.Examples))
	for i, ex := range s.Examples {
		if ex.Name == "" {
			return nil, fmt.Errorf("example %d: name is required", i)
		}
		if seen[ex.Name] {
			return nil, fmt.Errorf("duplicate example name %q", ex.Name)
		}
		seen[ex.Name] = true
		if ex.Command == "" {
			return nil, fmt.Errorf("example %q: command is required", ex.Name)
		}
		for _, a := range append(append([]Assertion{}, ex.Stdout...), ex.Stderr...) {
			if err := a.validate(); err != nil {
				return nil, fmt.Errorf("example %q: %w", ex.Name, err)
			}
		}
	}
	return &s, nil
}

// ByName returns the named example.
func (s *Suite) ByName(name string) (Example, error) {
	for _, ex := range s.Examples {
		if ex.Name == name {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("unknown example %q", name)
}

func (a Assertion) validate() error {
	set := 0
	for _, v := range []string{a.Contains, a.NotContains, a.Regexp} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("assertion must set exactly one of contains, not_contains, regexp")
	}
	if a.Regexp != "" {
		if _, err := regexp.Compile(a.Regexp); err != nil {
			return fmt.Errorf("bad regexp %q: %w", a.Regexp, err)
		}
	}
	return nil
}
