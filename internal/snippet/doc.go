// Package snippet extracts runnable Go snippets and their claimed output
// from markdown documents.
//
// A fenced code block with info string "go" is a runnable snippet. The next
// fenced block in document order, when tagged "output", is that snippet's
// claimed stdout. Blocks tagged "go skip" are extracted but never executed.
package snippet
