package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Metadata describes one registered dataset.
type Metadata struct {
	Name        string `yaml:"name"`        // Registry key (e.g., "btc-daily")
	Ident       string `yaml:"ident"`       // Go identifier for the generated var (derived if empty)
	Symbol      string `yaml:"symbol"`      // Instrument symbol (e.g., "BTC-USD")
	Timeframe   string `yaml:"timeframe"`   // Canonical timeframe (e.g., "1d")
	Source      string `yaml:"source"`      // Source CSV path, relative to the registry's source dir
	Rows        int    `yaml:"rows"`        // Expected number of data rows
	License     string `yaml:"license"`     // SPDX identifier
	Description string `yaml:"description"` // One-line description
}

// Registry is the ordered set of registered datasets.
type Registry struct {
	SourceDir string
	Datasets  []Metadata
}

type registryFile struct {
	Datasets []Metadata `yaml:"datasets"`
}

// LoadRegistry reads the YAML registry at path. Dataset source paths are
// resolved relative to sourceDir. Order in the file is preserved.
func LoadRegistry(path, sourceDir string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	var rf registryFile
	if err := yaml.Unmarshal([]byte(expanded), &rf); err != nil {
		return nil, fmt.Errorf("parse registry yaml: %w", err)
	}
	if len(rf.Datasets) == 0 {
		return nil, fmt.Errorf("registry %s lists no datasets", path)
	}

	seen := make(map[string]bool, len(rf.Datasets))
	for i := range rf.Datasets {
		m := &rf.Datasets[i]
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("dataset %d: %w", i, err)
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("duplicate dataset name %q", m.Name)
		}
		seen[m.Name] = true
		if m.Ident == "" {
			m.Ident = deriveIdent(m.Name)
		}
	}

	return &Registry{SourceDir: sourceDir, Datasets: rf.Datasets}, nil
}

// ByName returns the metadata for name, or an error naming the known sets.
func (r *Registry) ByName(name string) (Metadata, error) {
	for _, m := range r.Datasets {
		if m.Name == name {
			return m, nil
		}
	}
	return Metadata{}, fmt.Errorf("unknown dataset %q (known: %s)", name, strings.Join(r.Names(), ", "))
}

// Names returns dataset names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Datasets))
	for i, m := range r.Datasets {
		names[i] = m.Name
	}
	return names
}

// SourcePath returns the resolved path of a dataset's source CSV.
func (r *Registry) SourcePath(m Metadata) string {
	if filepath.IsAbs(m.Source) {
		return m.Source
	}
	return filepath.Join(r.SourceDir, m.Source)
}

func (m *Metadata) validate() error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Symbol == "" {
		return fmt.Errorf("%s: symbol is required", m.Name)
	}
	if m.Source == "" {
		return fmt.Errorf("%s: source is required", m.Name)
	}
	if m.Rows < 1 {
		return fmt.Errorf("%s: rows must be >= 1", m.Name)
	}
	if _, err := ParseTimeframe(m.Timeframe); err != nil {
		return fmt.Errorf("%s: %w", m.Name, err)
	}
	return nil
}

// ParseTimeframe converts a canonical timeframe string ("1m", "5m", "1h",
// "1d") to a duration.
func ParseTimeframe(tf string) (time.Duration, error) {
	if tf == "" {
		return 0, fmt.Errorf("timeframe is required")
	}
	unit := tf[len(tf)-1]
	n := 0
	for _, ch := range tf[:len(tf)-1] {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("invalid timeframe %q", tf)
		}
		n = n*10 + int(ch-'0')
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid timeframe %q", tf)
	}
	switch unit {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid timeframe %q (want m, h or d unit)", tf)
	}
}

// deriveIdent builds an exported Go identifier from a dataset name:
// "btc-daily" -> "BtcDaily". Registries set ident explicitly when they want
// acronym casing like BTCDaily.
func deriveIdent(name string) string {
	var b strings.Builder
	upper := true
	for _, ch := range name {
		switch {
		case ch == '-' || ch == '_' || ch == ' ':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(ch))
			upper = false
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
