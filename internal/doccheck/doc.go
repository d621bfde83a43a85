// Package doccheck executes Go snippets extracted from markdown and
// compares their stdout against the output the document claims.
//
// Snippets run in a yaegi interpreter with the standard library plus a
// curated symbol table for go-talib and sampledata, so documentation can
// import exactly what library users would. Snippets within one file share
// an interpreter and run in order; separate files are independent.
package doccheck
