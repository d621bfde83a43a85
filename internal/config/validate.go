package config

import (
	"errors"
	"fmt"
	"go/token"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Datasets.Registry == "" {
		return errors.New("datasets.registry is required")
	}
	if !token.IsIdentifier(c.Datasets.Package) {
		return fmt.Errorf("datasets.package %q is not a valid Go identifier", c.Datasets.Package)
	}

	if c.Docs.SnippetTimeout <= 0 {
		return errors.New("docs.snippet_timeout must be positive")
	}
	if c.Docs.Parallelism < 1 {
		return errors.New("docs.parallelism must be >= 1")
	}

	if c.Examples.Suite == "" {
		return errors.New("examples.suite is required")
	}
	if c.Examples.Timeout <= 0 {
		return errors.New("examples.timeout must be positive")
	}

	return nil
}
