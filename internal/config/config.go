package config

// Config is the root configuration shared by the quantcheck binaries.
type Config struct {
	Datasets DatasetsConfig `yaml:"datasets"`
	Docs     DocsConfig     `yaml:"docs"`
	Examples ExamplesConfig `yaml:"examples"`
}

// DatasetsConfig holds sample-data generator settings.
type DatasetsConfig struct {
	Registry  string `yaml:"registry"`   // Dataset registry YAML path
	SourceDir string `yaml:"source_dir"` // Directory of source CSVs
	OutputDir string `yaml:"output_dir"` // Directory generated Go files are written to
	Package   string `yaml:"package"`    // Package name of generated files
}

// DocsConfig holds documentation checker settings.
type DocsConfig struct {
	Dir            string   `yaml:"dir"`             // Directory walked for *.md files
	SnippetTimeout Duration `yaml:"snippet_timeout"` // Per-snippet execution timeout
	Parallelism    int      `yaml:"parallelism"`     // Concurrent doc files
}

// ExamplesConfig holds example regression harness settings.
type ExamplesConfig struct {
	Suite       string   `yaml:"suite"`        // Suite YAML path
	Timeout     Duration `yaml:"timeout"`      // Default per-example timeout
	WorkDir     string   `yaml:"work_dir"`     // Default working directory for examples
	ArtifactDir string   `yaml:"artifact_dir"` // Where examples write artifacts; empty = temp dir
}
