// Package harness runs example programs as subprocesses and asserts on
// what they print and produce.
//
// Each example is launched at most once per process; its captured streams
// are cached and every assertion evaluates against that one capture.
// Failures are terminal per check and simply aggregated - there is no
// retry.
package harness
