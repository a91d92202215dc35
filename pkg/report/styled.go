package report

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/conflicts"
	"github.com/arthur-debert/modconflict/pkg/output/styles"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// Styled renders the same content as Text using the terminal styles
func Styled(found []conflicts.Conflict, stats []conflicts.LayerStats) string {
	var b strings.Builder

	b.WriteString(styles.GetStyle("SectionHeader").Render(SummaryHeader))
	b.WriteString("\n")
	if len(stats) == 0 {
		b.WriteString(styles.GetStyle("None").Render("No conflicts found"))
		b.WriteString("\n")
	}
	for _, s := range stats {
		b.WriteString(styledSummaryLine(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.GetStyle("SectionHeader").Render(DetailsHeader))
	b.WriteString("\n")
	indent := styles.GetStyle("Indent")
	for _, c := range found {
		b.WriteString("File: ")
		b.WriteString(styles.GetStyle("FileName").Render(c.Name))
		b.WriteString("\n")
		for _, o := range c.Occurrences {
			b.WriteString(indent.Render("- " + styledOccurrence(o)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// StyledDiagnostics lists diagnostics in the warning style
func StyledDiagnostics(diags []types.Diagnostic) string {
	style := styles.GetStyle("Diagnostic")
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(style.Render(d.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func styledSummaryLine(s conflicts.LayerStats) string {
	count := styles.GetStyle("Count")

	partners := styles.GetStyle("None").Render(NoPartners)
	if len(s.Partners) > 0 {
		partners = styles.GetStyle("Partner").Render(strings.Join(s.Partners, ", "))
	}

	return fmt.Sprintf("%s %s: %s total conflicts (Mod-to-Mod: %s partners → %s; With Game: %s)",
		rank(s.MinRank),
		styles.GetStyle("LayerName").Render(s.Name),
		count.Render(fmt.Sprint(s.TotalConflicts)),
		count.Render(fmt.Sprint(len(s.Partners))),
		partners,
		count.Render(fmt.Sprint(s.GameConflicts)))
}

func styledOccurrence(o conflicts.Occurrence) string {
	name := styles.GetStyle("LayerName")
	if o.Layer == types.BaseLayerName {
		name = styles.GetStyle("Game")
	}
	return fmt.Sprintf("%s %s %s",
		rank(o.Rank),
		name.Render(o.Layer),
		styles.GetStyle("FilePath").Render("("+o.Path+")"))
}

func rank(r int) string {
	return styles.GetStyle("Rank").Render(fmt.Sprintf("[%d]", r))
}
