package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRegistry       = "configs/datasets.yaml"
	DefaultSourceDir      = "data"
	DefaultOutputDir      = "sampledata"
	DefaultPackage        = "sampledata"
	DefaultDocsDir        = "docs"
	DefaultSnippetTimeout = 10 * time.Second
	DefaultParallelism    = 4
	DefaultSuite          = "configs/examples.yaml"
	DefaultExampleTimeout = 60 * time.Second
)

func (c *Config) applyDefaults() {
	// Datasets defaults
	if c.Datasets.Registry == "" {
		c.Datasets.Registry = DefaultRegistry
	}
	if c.Datasets.SourceDir == "" {
		c.Datasets.SourceDir = DefaultSourceDir
	}
	if c.Datasets.OutputDir == "" {
		c.Datasets.OutputDir = DefaultOutputDir
	}
	if c.Datasets.Package == "" {
		c.Datasets.Package = DefaultPackage
	}

	// Docs defaults
	if c.Docs.Dir == "" {
		c.Docs.Dir = DefaultDocsDir
	}
	if c.Docs.SnippetTimeout == 0 {
		c.Docs.SnippetTimeout = Duration(DefaultSnippetTimeout)
	}
	if c.Docs.Parallelism == 0 {
		c.Docs.Parallelism = DefaultParallelism
	}

	// Examples defaults
	if c.Examples.Suite == "" {
		c.Examples.Suite = DefaultSuite
	}
	if c.Examples.Timeout == 0 {
		c.Examples.Timeout = Duration(DefaultExampleTimeout)
	}
}
