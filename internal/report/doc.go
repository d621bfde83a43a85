// Package report aggregates check results into printed PASS/FAIL lines,
// a summary with a run ID, and a process exit code.
package report
