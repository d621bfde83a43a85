package report

import (
	"strings"
	"testing"
	"time"
)

func TestPrinterConsume(t *testing.T) {
	q := NewQueue(4)
	q.Send(Pass("docs/a.md:5", 20*time.Millisecond))
	q.Send(Fail("docs/a.md:12", "output mismatch", "want: 2", "got:  3"))
	q.Close()

	var out strings.Builder
	s := NewPrinter(&out, false).Consume(q)

	if s.Passed != 1 || s.Failed != 1 {
		t.Errorf("summary = %d passed, %d failed; want 1, 1", s.Passed, s.Failed)
	}
	if s.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", s.ExitCode())
	}

	got := out.String()
	for _, want := range []string{
		"PASS docs/a.md:5 (20ms)\n",
		"FAIL docs/a.md:12\n",
		"    output mismatch\n",
		"    want: 2\n",
		"1 passed, 1 failed in ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrinterVerboseDetails(t *testing.T) {
	q := NewQueue(2)
	q.Send(Result{Name: "docs/a.md:3", Passed: true, Details: []string{"skipped"}})
	q.Close()

	var quiet strings.Builder
	NewPrinter(&quiet, false).Consume(q)
	if strings.Contains(quiet.String(), "skipped") {
		t.Error("details printed for a passing check without verbose")
	}

	q = NewQueue(2)
	q.Send(Result{Name: "docs/a.md:3", Passed: true, Details: []string{"skipped"}})
	q.Close()

	var loud strings.Builder
	NewPrinter(&loud, true).Consume(q)
	if !strings.Contains(loud.String(), "    skipped\n") {
		t.Errorf("verbose output missing details:\n%s", loud.String())
	}
}

func TestSummaryExitCode(t *testing.T) {
	if got := (Summary{Passed: 3}).ExitCode(); got != 0 {
		t.Errorf("ExitCode() = %d, want 0", got)
	}
	if got := (Summary{Passed: 3, Failed: 1}).ExitCode(); got != 1 {
		t.Errorf("ExitCode() = %d, want 1", got)
	}
}
