// Package sampledata ships small OHLCV datasets embedded as Go source, so
// examples and documentation snippets run without external data files.
//
// The per-dataset files and datasets_gen.go are generated by cmd/samplegen
// from the source CSVs listed in configs/datasets.yaml. Regenerate with:
//
//	samplegen --config configs/quantcheck.yaml --all
package sampledata
