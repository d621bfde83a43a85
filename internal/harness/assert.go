package harness

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Check is one evaluated assertion.
type Check struct {
	Name   string
	Passed bool
	Detail string // Set on failure
}

// Evaluate runs every check an example declares against its capture.
// Checks are pure over the capture; nothing reruns the subprocess.
func Evaluate(ex Example, c *Capture) []Check {
	var checks []Check

	if c.TimedOut {
		checks = append(checks, Check{
			Name:   "completes in time",
			Detail: fmt.Sprintf("timed out; partial stdout: %s", excerpt(c.Stdout)),
		})
	} else {
		checks = append(checks, exitCheck(ex, c))
	}

	for _, a := range ex.Stdout {
		checks = append(checks, streamCheck("stdout", a, c.Stdout))
	}
	for _, a := range ex.Stderr {
		checks = append(checks, streamCheck("stderr", a, c.Stderr))
	}
	for _, art := range ex.Artifacts {
		checks = append(checks, artifactCheck(art))
	}
	return checks
}

func exitCheck(ex Example, c *Capture) Check {
	chk := Check{Name: fmt.Sprintf("exit code %d", ex.ExitCode)}
	if c.ExitCode == ex.ExitCode {
		chk.Passed = true
	} else {
		chk.Detail = fmt.Sprintf("got exit code %d; stderr: %s", c.ExitCode, excerpt(c.Stderr))
	}
	return chk
}

func streamCheck(stream string, a Assertion, text string) Check {
	switch {
	case a.Contains != "":
		chk := Check{Name: fmt.Sprintf("%s contains %q", stream, a.Contains)}
		if strings.Contains(text, a.Contains) {
			chk.Passed = true
		} else {
			chk.Detail = fmt.Sprintf("%s: %s", stream, excerpt(text))
		}
		return chk
	case a.NotContains != "":
		chk := Check{Name: fmt.Sprintf("%s omits %q", stream, a.NotContains)}
		if !strings.Contains(text, a.NotContains) {
			chk.Passed = true
		} else {
			chk.Detail = fmt.Sprintf("%s: %s", stream, excerpt(text))
		}
		return chk
	default:
		chk := Check{Name: fmt.Sprintf("%s matches %s", stream, a.Regexp)}
		// Patterns are validated at suite load.
		if regexp.MustCompile(a.Regexp).MatchString(text) {
			chk.Passed = true
		} else {
			chk.Detail = fmt.Sprintf("%s: %s", stream, excerpt(text))
		}
		return chk
	}
}

func artifactCheck(art Artifact) Check {
	chk := Check{Name: fmt.Sprintf("artifact %s", art.Path)}
	info, err := os.Stat(art.Path)
	if err != nil {
		chk.Detail = err.Error()
		return chk
	}
	min := art.MinBytes
	if min < 1 {
		min = 1
	}
	if info.Size() < min {
		chk.Detail = fmt.Sprintf("size %d bytes, want >= %d", info.Size(), min)
		return chk
	}
	chk.Passed = true
	return chk
}

// excerpt trims a captured stream for a one-line diagnostic.
func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(empty)"
	}
	const max = 200
	s = strings.ReplaceAll(s, "\n", " | ")
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
