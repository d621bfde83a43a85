// Package codegen emits datasets as Go source files in the sampledata
// package. Output is deterministic: same metadata and candles produce
// byte-identical files.
package codegen
