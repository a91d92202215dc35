package report

import (
	"strings"
	"testing"

	"github.com/arthur-debert/modconflict/pkg/conflicts"
	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/stretchr/testify/assert"
)

func sampleConflicts() []conflicts.Conflict {
	return []conflicts.Conflict{
		{
			Name: "a.txt",
			Key:  "a.txt",
			Occurrences: []conflicts.Occurrence{
				{Rank: 0, Layer: "Game", Path: "C:/game/events/a.txt"},
				{Rank: 1, Layer: "Alpha", Path: "C:/mods/alpha/events/a.txt"},
				{Rank: 2, Layer: "Beta", Path: "C:/mods/beta/events/a.txt"},
			},
		},
		{
			Name: "b.gui",
			Key:  "b.gui",
			Occurrences: []conflicts.Occurrence{
				{Rank: 1, Layer: "Alpha", Path: "C:/mods/alpha/gui/b.gui"},
				{Rank: 2, Layer: "Beta", Path: "C:/mods/beta/gui/b.gui"},
			},
		},
	}
}

func sampleStats() []conflicts.LayerStats {
	return conflicts.Aggregate(sampleConflicts())
}

func TestTextFormat(t *testing.T) {
	want := strings.Join([]string{
		"=== Combined Conflict Summary ===",
		"[1] Alpha: 2 total conflicts (Mod-to-Mod: 1 partners → Beta; With Game: 1)",
		"[2] Beta: 2 total conflicts (Mod-to-Mod: 1 partners → Alpha; With Game: 1)",
		"",
		"=== Detailed Conflicts ===",
		"File: a.txt",
		"  - [0] Game (C:/game/events/a.txt)",
		"  - [1] Alpha (C:/mods/alpha/events/a.txt)",
		"  - [2] Beta (C:/mods/beta/events/a.txt)",
		"",
		"File: b.gui",
		"  - [1] Alpha (C:/mods/alpha/gui/b.gui)",
		"  - [2] Beta (C:/mods/beta/gui/b.gui)",
		"",
		"",
	}, "\n")

	assert.Equal(t, want, Text(sampleConflicts(), sampleStats()))
}

func TestTextIsDeterministic(t *testing.T) {
	first := Text(sampleConflicts(), sampleStats())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Text(sampleConflicts(), sampleStats()))
	}
}

func TestTextEmpty(t *testing.T) {
	assert.Equal(t, SummaryHeader+"\n\n"+DetailsHeader+"\n", Text(nil, nil))
}

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name  string
		stats conflicts.LayerStats
		want  string
	}{
		{
			name:  "game only",
			stats: conflicts.LayerStats{Name: "Alpha", TotalConflicts: 1, Partners: []string{}, GameConflicts: 1, MinRank: 1},
			want:  "[1] Alpha: 1 total conflicts (Mod-to-Mod: 0 partners → None; With Game: 1)",
		},
		{
			name:  "several partners",
			stats: conflicts.LayerStats{Name: "Zed", TotalConflicts: 4, Partners: []string{"Alpha", "Beta", "Gamma"}, MinRank: 12},
			want:  "[12] Zed: 4 total conflicts (Mod-to-Mod: 3 partners → Alpha, Beta, Gamma; With Game: 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummaryLine(tt.stats))
		})
	}
}

func TestDiagnosticsText(t *testing.T) {
	diags := []types.Diagnostic{
		types.NewDiagnostic(errors.ErrDescriptorUnreadable, "mod/ugc_1.mod", "descriptor cannot be read"),
		types.NewDiagnostic(errors.ErrRootUnavailable, "/steam/workshop", "root does not exist"),
	}

	assert.Equal(t,
		"[DESCRIPTOR_UNREADABLE] mod/ugc_1.mod: descriptor cannot be read\n"+
			"[ROOT_UNAVAILABLE] /steam/workshop: root does not exist\n",
		DiagnosticsText(diags))
}

func TestLayersText(t *testing.T) {
	layers := []types.Layer{
		{Root: "c:/game", Name: "Game", Rank: 0},
		{Root: "c:/mods/alpha", Name: "Alpha", Rank: 1},
	}

	assert.Equal(t, "[0] Game (c:/game)\n[1] Alpha (c:/mods/alpha)\n", LayersText(layers))
	assert.Empty(t, LayersText(nil))
}

func TestStyledKeepsContent(t *testing.T) {
	out := Styled(sampleConflicts(), sampleStats())

	assert.Contains(t, out, "Combined Conflict Summary")
	assert.Contains(t, out, "Detailed Conflicts")
	assert.Contains(t, out, "C:/mods/beta/gui/b.gui")
	assert.Contains(t, out, "Alpha")

	assert.Contains(t, Styled(nil, nil), "No conflicts found")
	assert.Contains(t, StyledDiagnostics([]types.Diagnostic{
		types.NewDiagnostic(errors.ErrUnattributable, "/x/a.txt", "unowned"),
	}), "/x/a.txt")
}
