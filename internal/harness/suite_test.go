package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadSuite(t *testing.T) {
	yaml := `examples:
  - name: hello
    command: echo
    args: ["hi"]
    timeout: 5s
    stdout:
      - contains: hi
      - not_contains: bye
      - regexp: '^h'
  - name: artifacts
    command: touch
    args: ["${OUT_DIR}/x.csv"]
    artifacts:
      - path: ${OUT_DIR}/x.csv
        min_bytes: 10
`
	t.Setenv("OUT_DIR", "/tmp/run42")

	s, err := LoadSuite(writeSuite(t, yaml))
	if err != nil {
		t.Fatalf("LoadSuite failed: %v", err)
	}
	if len(s.Examples) != 2 {
		t.Fatalf("got %d examples, want 2", len(s.Examples))
	}

	ex, err := s.ByName("hello")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	if ex.Command != "echo" || len(ex.Stdout) != 3 {
		t.Errorf("example = %+v", ex)
	}
	if ex.Timeout.Std() != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", ex.Timeout)
	}

	ex, err = s.ByName("artifacts")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	if got := ex.Artifacts[0].Path; got != "/tmp/run42/x.csv" {
		t.Errorf("artifact path = %q, env not expanded", got)
	}

	if _, err := s.ByName("missing"); err == nil {
		t.Error("ByName accepted an unknown example")
	}
}

func TestLoadSuiteErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no examples", "examples: []\n", "no examples"},
		{"missing name", "examples:\n  - command: echo\n", "name is required"},
		{"missing command", "examples:\n  - name: x\n", "command is required"},
		{
			"duplicate name",
			"examples:\n  - {name: x, command: echo}\n  - {name: x, command: echo}\n",
			"duplicate example name",
		},
		{
			"empty assertion",
			"examples:\n  - name: x\n    command: echo\n    stdout:\n      - {}\n",
			"exactly one of",
		},
		{
			"two assertion fields",
			"examples:\n  - name: x\n    command: echo\n    stdout:\n      - {contains: a, regexp: b}\n",
			"exactly one of",
		},
		{
			"bad regexp",
			"examples:\n  - name: x\n    command: echo\n    stderr:\n      - regexp: '['\n",
			"bad regexp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSuite(writeSuite(t, tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}
	return path
}
