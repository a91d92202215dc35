package conflicts

import (
	"testing"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticResolver matches on whole-segment prefixes, longest first
type staticResolver []types.Layer

func (s staticResolver) Lookup(key string) (types.Layer, bool) {
	var best types.Layer
	found := false
	for _, l := range s {
		if l.Root.Contains(key) && (!found || len(l.Root) > len(best.Root)) {
			best, found = l, true
		}
	}
	return best, found
}

var testLayers = staticResolver{
	{Root: "c:/game", Name: "Game", Rank: 0},
	{Root: "c:/mods/alpha", Name: "Alpha", Rank: 1},
	{Root: "c:/mods/beta", Name: "Beta", Rank: 2},
	{Root: "c:/mods/alpha/submod", Name: "Nested", Rank: 3},
}

func TestAttributeOrdersByRankThenPath(t *testing.T) {
	groups := GroupDuplicates(indexOf(
		"C:/mods/beta/events/a.txt",
		"C:/mods/alpha/events/a.txt",
		"C:/game/events/a.txt",
	))

	conflicts, diags := Attribute(groups, testLayers)
	require.Empty(t, diags)
	require.Len(t, conflicts, 1)

	assert.Equal(t, []Occurrence{
		{Rank: 0, Layer: "Game", Path: "C:/game/events/a.txt", Key: "c:/game/events/a.txt"},
		{Rank: 1, Layer: "Alpha", Path: "C:/mods/alpha/events/a.txt", Key: "c:/mods/alpha/events/a.txt"},
		{Rank: 2, Layer: "Beta", Path: "C:/mods/beta/events/a.txt", Key: "c:/mods/beta/events/a.txt"},
	}, conflicts[0].Occurrences)
	assert.Equal(t, []string{"Alpha", "Beta", "Game"}, conflicts[0].Layers())
}

func TestAttributeNestedLayerUsesLongestRoot(t *testing.T) {
	groups := GroupDuplicates(indexOf(
		"C:/mods/alpha/submod/gui/x.gui",
		"C:/mods/alpha/gui/x.gui",
	))

	conflicts, _ := Attribute(groups, testLayers)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "Alpha", conflicts[0].Occurrences[0].Layer)
	assert.Equal(t, "Nested", conflicts[0].Occurrences[1].Layer)
	assert.Equal(t, 3, conflicts[0].Occurrences[1].Rank)
}

func TestAttributeSameLayerIsNotAConflict(t *testing.T) {
	groups := GroupDuplicates(indexOf(
		"C:/mods/alpha/events/a.txt",
		"C:/mods/alpha/backup/a.txt",
	))

	conflicts, diags := Attribute(groups, testLayers)
	assert.Empty(t, conflicts)
	assert.Empty(t, diags)
}

func TestAttributeDropsUnattributable(t *testing.T) {
	groups := GroupDuplicates(indexOf(
		"C:/mods/alpha/events/a.txt",
		"C:/workshop/999/events/a.txt",
		"C:/mods/alpha/events/b.txt",
		"C:/mods/beta/events/b.txt",
		"C:/workshop/999/events/b.txt",
	))

	conflicts, diags := Attribute(groups, testLayers)

	require.Len(t, conflicts, 1, "a.txt falls below two layers once the unknown copy is dropped")
	assert.Equal(t, "b.txt", conflicts[0].Name)
	assert.Len(t, conflicts[0].Occurrences, 2)

	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, errors.ErrUnattributable, d.Code)
	}
	assert.Equal(t, "C:/workshop/999/events/a.txt", diags[0].Subject)
}

func TestAttributeSortsConflictsByName(t *testing.T) {
	groups := GroupDuplicates(indexOf(
		"C:/mods/alpha/z.txt", "C:/mods/beta/z.txt",
		"C:/mods/alpha/M.txt", "C:/mods/beta/m.txt",
		"C:/mods/alpha/a.txt", "C:/mods/beta/a.txt",
	))

	conflicts, _ := Attribute(groups, testLayers)

	var names []string
	for _, c := range conflicts {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"a.txt", "M.txt", "z.txt"}, names)
}
