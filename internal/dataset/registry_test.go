package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const registryYAML = `datasets:
  - name: btc-daily
    ident: BTCDaily
    symbol: BTC-USD
    timeframe: 1d
    source: btc_daily.csv
    rows: 3
  - name: eth-hourly
    symbol: ETH-USD
    timeframe: 1h
    source: eth_hourly.csv
    rows: 2
`

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "datasets.yaml", registryYAML)

	reg, err := LoadRegistry(path, dir)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}

	if got := reg.Names(); len(got) != 2 || got[0] != "btc-daily" || got[1] != "eth-hourly" {
		t.Errorf("Names() = %v, want [btc-daily eth-hourly]", got)
	}

	m, err := reg.ByName("btc-daily")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	if m.Ident != "BTCDaily" {
		t.Errorf("Ident = %q, want BTCDaily", m.Ident)
	}
	if got := reg.SourcePath(m); got != filepath.Join(dir, "btc_daily.csv") {
		t.Errorf("SourcePath = %q", got)
	}

	// Ident falls back to a derived identifier when the registry omits it.
	m, err = reg.ByName("eth-hourly")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	if m.Ident != "EthHourly" {
		t.Errorf("derived Ident = %q, want EthHourly", m.Ident)
	}
}

func TestByNameUnknown(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "datasets.yaml", registryYAML)

	reg, err := LoadRegistry(path, dir)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}

	_, err = reg.ByName("sol-weekly")
	if err == nil {
		t.Fatal("ByName accepted an unknown dataset")
	}
	// The error names the unknown set and lists the known ones.
	for _, want := range []string{`"sol-weekly"`, "btc-daily", "eth-hourly"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error = %q, want it to contain %q", err, want)
		}
	}
}

func TestLoadRegistryEnvSubstitution(t *testing.T) {
	t.Setenv("SAMPLE_SYMBOL", "SOL-USD")

	dir := t.TempDir()
	path := writeTempFile(t, dir, "datasets.yaml", `datasets:
  - name: sol-daily
    symbol: ${SAMPLE_SYMBOL}
    timeframe: 1d
    source: sol.csv
    rows: 1
`)

	reg, err := LoadRegistry(path, dir)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	if got := reg.Datasets[0].Symbol; got != "SOL-USD" {
		t.Errorf("Symbol = %q, want SOL-USD", got)
	}
}

func TestLoadRegistryErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no datasets", "datasets: []\n", "no datasets"},
		{
			"duplicate name",
			`datasets:
  - {name: a, symbol: A, timeframe: 1d, source: a.csv, rows: 1}
  - {name: a, symbol: A, timeframe: 1d, source: a.csv, rows: 1}
`,
			"duplicate dataset name",
		},
		{
			"missing symbol",
			"datasets:\n  - {name: a, timeframe: 1d, source: a.csv, rows: 1}\n",
			"symbol is required",
		},
		{
			"bad timeframe",
			"datasets:\n  - {name: a, symbol: A, timeframe: 1w, source: a.csv, rows: 1}\n",
			"invalid timeframe",
		},
		{
			"zero rows",
			"datasets:\n  - {name: a, symbol: A, timeframe: 1d, source: a.csv, rows: 0}\n",
			"rows must be >= 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeTempFile(t, dir, "datasets.yaml", tt.yaml)
			_, err := LoadRegistry(path, dir)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		tf      string
		want    time.Duration
		wantErr bool
	}{
		{"1m", time.Minute, false},
		{"5m", 5 * time.Minute, false},
		{"1h", time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"", 0, true},
		{"0d", 0, true},
		{"1w", 0, true},
		{"d", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.tf, func(t *testing.T) {
			got, err := ParseTimeframe(tt.tf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeframe(%q) error = %v, wantErr %v", tt.tf, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTimeframe(%q) = %v, want %v", tt.tf, got, tt.want)
			}
		})
	}
}

func TestValidateSource(t *testing.T) {
	const goodCSV = `date,open,high,low,close,volume
2024-01-01,10,12,9,11,100
2024-01-02,11,13,10,12,110
2024-01-03,12,14,11,13,120
`

	tests := []struct {
		name string
		csv  string
		rows int
		want string // empty = valid
	}{
		{"valid", goodCSV, 3, ""},
		{"row count mismatch", goodCSV, 4, "registry declares 4"},
		{
			"timestamps not increasing",
			`date,open,high,low,close
2024-01-02,10,12,9,11
2024-01-01,11,13,10,12
`,
			2, "not after",
		},
		{
			"high below close",
			`date,open,high,low,close
2024-01-01,10,10.5,9,11
`,
			1, "high 10.5 below open/close",
		},
		{
			"low above open",
			`date,open,high,low,close
2024-01-01,10,12,10.5,11
`,
			1, "low 10.5 above open/close",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTempFile(t, dir, "src.csv", tt.csv)

			reg := &Registry{SourceDir: dir}
			m := Metadata{Name: "x", Source: "src.csv", Rows: tt.rows}

			err := reg.ValidateSource(m)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("ValidateSource failed: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateSourceMissingFile(t *testing.T) {
	reg := &Registry{SourceDir: t.TempDir()}
	err := reg.ValidateSource(Metadata{Name: "x", Source: "gone.csv", Rows: 1})
	if err == nil {
		t.Fatal("expected error for missing source file")
	}
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
