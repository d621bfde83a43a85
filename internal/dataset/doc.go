// Package dataset loads the dataset registry and validates source CSVs
// against it before any code generation happens.
package dataset
