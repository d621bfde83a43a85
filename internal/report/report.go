package report

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one named check.
type Result struct {
	Name     string        // Check name (snippet location, example name, ...)
	Passed   bool          // Whether the check passed
	Duration time.Duration // Wall time of the check, 0 if not measured
	Details  []string      // Diagnostic lines, printed indented on failure
}

// Fail returns a failed result with the given detail lines.
func Fail(name string, details ...string) Result {
	return Result{Name: name, Details: details}
}

// Pass returns a passed result.
func Pass(name string, d time.Duration) Result {
	return Result{Name: name, Passed: true, Duration: d}
}

// Summary aggregates results across one run.
type Summary struct {
	RunID   uuid.UUID // Identifies this invocation in output
	Passed  int
	Failed  int
	Elapsed time.Duration
}

// ExitCode maps the aggregate outcome to a process exit code: 0 iff no
// check failed.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}
