// Package types defines the core types and interfaces shared by the
// conflict pipeline: layers and their roots, indexed file records,
// non-fatal diagnostics, and the FS abstraction every stage reads through.
package types
