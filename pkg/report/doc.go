// Package report renders conflict results.
//
// Text produces the plain summary written to conflict_summary.txt, Styled
// the same content colored for terminals, and JSON a machine-readable
// document. WriteFiles persists the summary together with optional dumps
// of every pipeline stage.
package report
