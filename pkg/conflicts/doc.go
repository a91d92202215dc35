// Package conflicts turns file indices into ranked layer conflicts.
//
// The pipeline has three stages, each returning freshly allocated values
// and leaving its inputs untouched:
//
//	GroupDuplicates  file indices      -> file names seen at >= 2 paths
//	Attribute        groups + registry -> occurrences ranked by layer, >= 2 layers
//	Aggregate        conflicts         -> per-layer statistics
//
// File names are compared case-insensitively; the case found on disk is
// kept for display.
package conflicts
