// Package csvconv parses source CSV files into typed in-memory tables.
//
// Conversion is two-phase: read raw records, then infer one kind per column
// by scanning every non-null cell. Numeric strings coerce to int64/float64,
// recognizable timestamps to time.Time; blank cells and NaN/null literals
// become nulls tracked in a per-column validity mask. A cell is either
// coerced or null - conversion never invents values.
package csvconv
