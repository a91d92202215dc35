// Package registry builds the precedence-ordered set of content layers.
//
// A registry maps each normalized layer root to its display name and
// precedence rank. Overlays take their rank from their 1-based position in
// the load order; the base game is always rank 0 under the reserved name
// "Game" and can never be displaced by an overlay. Once built, a registry
// is immutable and answers longest-prefix lookups used for attribution.
package registry
