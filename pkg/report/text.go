package report

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/conflicts"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// Section headers of the summary
const (
	SummaryHeader = "=== Combined Conflict Summary ==="
	DetailsHeader = "=== Detailed Conflicts ==="

	// NoPartners stands in for an empty partner list
	NoPartners = "None"
)

// Text renders the conflict summary: one line per layer in stats order,
// a blank line, then one block per conflicting file. The output depends
// only on its inputs.
func Text(found []conflicts.Conflict, stats []conflicts.LayerStats) string {
	var b strings.Builder

	b.WriteString(SummaryHeader)
	b.WriteString("\n")
	for _, s := range stats {
		b.WriteString(SummaryLine(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(DetailsHeader)
	b.WriteString("\n")
	for _, c := range found {
		fmt.Fprintf(&b, "File: %s\n", c.Name)
		for _, o := range c.Occurrences {
			fmt.Fprintf(&b, "  - %s\n", OccurrenceLine(o))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// SummaryLine formats the summary entry of one layer
func SummaryLine(s conflicts.LayerStats) string {
	return fmt.Sprintf("[%d] %s: %d total conflicts (Mod-to-Mod: %d partners → %s; With Game: %d)",
		s.MinRank, s.Name, s.TotalConflicts, len(s.Partners), partnerList(s.Partners), s.GameConflicts)
}

// OccurrenceLine formats one occurrence of a conflicting file
func OccurrenceLine(o conflicts.Occurrence) string {
	return fmt.Sprintf("[%d] %s (%s)", o.Rank, o.Layer, o.Path)
}

// LayerLine formats one registry entry
func LayerLine(l types.Layer) string {
	return fmt.Sprintf("[%d] %s (%s)", l.Rank, l.Name, l.Root)
}

// LayersText lists layers one per line in the given order
func LayersText(layers []types.Layer) string {
	var b strings.Builder
	for _, l := range layers {
		b.WriteString(LayerLine(l))
		b.WriteString("\n")
	}
	return b.String()
}

// DiagnosticsText lists diagnostics one per line
func DiagnosticsText(diags []types.Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}

func partnerList(partners []string) string {
	if len(partners) == 0 {
		return NoPartners
	}
	return strings.Join(partners, ", ")
}
