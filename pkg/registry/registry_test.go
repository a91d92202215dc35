package registry

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fetcherFrom serves descriptors from a map; missing entries fail like a
// deleted descriptor file.
func fetcherFrom(descriptors map[string][]string) DescriptorFetcher {
	return func(layerID string) ([]string, error) {
		lines, ok := descriptors[layerID]
		if !ok {
			return nil, errors.Newf(errors.ErrNotFound, "no descriptor %s", layerID)
		}
		return lines, nil
	}
}

func descriptor(name, path string) []string {
	return []string{
		`version="1.0"`,
		fmt.Sprintf(`name="%s"`, name),
		`tags={`,
		`	"Gameplay"`,
		`}`,
		fmt.Sprintf(`path="%s"`, path),
	}
}

func TestBuildRanksLayersByLoadOrder(t *testing.T) {
	fetch := fetcherFrom(map[string][]string{
		"100.mod": descriptor("Alpha", "C:/mods/alpha"),
		"200.mod": descriptor("Beta", "C:/mods/beta"),
	})

	reg, diags := Build([]string{"100.mod", "200.mod"}, fetch, "C:/game")
	require.Empty(t, diags)

	assert.Equal(t, []types.Layer{
		{Root: "c:/game", Name: "Game", Rank: 0},
		{Root: "c:/mods/alpha", Name: "Alpha", Rank: 1},
		{Root: "c:/mods/beta", Name: "Beta", Rank: 2},
	}, reg.Layers())
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, "Game", reg.Base().Name)
}

func TestBuildSkipsUnreadableAndIncompleteDescriptors(t *testing.T) {
	fetch := fetcherFrom(map[string][]string{
		"alpha.mod":   descriptor("Alpha", "C:/mods/alpha"),
		"noname.mod":  {`path="C:/mods/noname"`},
		"nopath.mod":  {`name="No Path"`},
		"charlie.mod": descriptor("Charlie", "C:/mods/charlie"),
	})

	reg, diags := Build([]string{"alpha.mod", "deleted.mod", "noname.mod", "nopath.mod", "charlie.mod"}, fetch, "C:/game")

	require.Len(t, diags, 3)
	assert.Equal(t, errors.ErrDescriptorUnreadable, diags[0].Code)
	assert.Equal(t, "deleted.mod", diags[0].Subject)
	assert.Equal(t, errors.ErrDescriptorInvalid, diags[1].Code)
	assert.Equal(t, errors.ErrDescriptorInvalid, diags[2].Code)

	layers := reg.Layers()
	require.Len(t, layers, 3)
	assert.Equal(t, "Alpha", layers[1].Name)
	assert.Equal(t, 1, layers[1].Rank)
	assert.Equal(t, "Charlie", layers[2].Name)
	assert.Equal(t, 5, layers[2].Rank, "rank is the raw load order position")
}

func TestBuildNeverOverwritesBaseLayer(t *testing.T) {
	fetch := fetcherFrom(map[string][]string{
		"impostor.mod": descriptor("Impostor", `C:\Game\`),
	})

	reg, diags := Build([]string{"impostor.mod"}, fetch, "C:/game")

	require.Len(t, diags, 1)
	assert.Equal(t, errors.ErrDescriptorInvalid, diags[0].Code)

	base, ok := reg.Get("c:/game")
	require.True(t, ok)
	assert.Equal(t, types.Layer{Root: "c:/game", Name: "Game", Rank: 0}, base)
	assert.Equal(t, 1, reg.Len())
}

func TestBuildRenamesOverlayNamedLikeGame(t *testing.T) {
	fetch := fetcherFrom(map[string][]string{
		"game.mod": descriptor("Game", "C:/mods/game"),
	})

	reg, diags := Build([]string{"game.mod"}, fetch, "C:/game")

	require.Len(t, diags, 1)
	assert.Equal(t, errors.ErrDescriptorInvalid, diags[0].Code)
	assert.Equal(t, "game.mod", diags[0].Subject)

	layer, ok := reg.Get("c:/mods/game")
	require.True(t, ok)
	assert.Equal(t, "Game"+ReservedNameSuffix, layer.Name)
	assert.Equal(t, 1, layer.Rank)
	assert.Equal(t, types.BaseLayerName, reg.Base().Name)
}

func TestBuildDuplicateRootLastWriteWins(t *testing.T) {
	fetch := fetcherFrom(map[string][]string{
		"a.mod": descriptor("First", "C:/mods/shared"),
		"b.mod": descriptor("Second", "c:/MODS/shared"),
	})

	reg, diags := Build([]string{"a.mod", "b.mod"}, fetch, "C:/game")
	require.Empty(t, diags)

	layer, ok := reg.Get("c:/mods/shared")
	require.True(t, ok)
	assert.Equal(t, "Second", layer.Name)
	assert.Equal(t, 2, layer.Rank)
	assert.Equal(t, 2, reg.Len())
}

func TestBuildResolvesRelativePaths(t *testing.T) {
	fetch := fetcherFrom(map[string][]string{
		"mod/local.mod": descriptor("Local", "mod/local"),
		"mod/abs.mod":   descriptor("Abs", "D:/workshop/123"),
	})

	reg, diags := BuildWithOptions([]string{"mod/local.mod", "mod/abs.mod"}, fetch, "C:/game",
		Options{RelativeBase: `C:\Users\me\Documents\Paradox Interactive\Crusader Kings III`})
	require.Empty(t, diags)

	_, ok := reg.Get("c:/users/me/documents/paradox interactive/crusader kings iii/mod/local")
	assert.True(t, ok)
	_, ok = reg.Get("d:/workshop/123")
	assert.True(t, ok)
}

func TestLookupLongestPrefix(t *testing.T) {
	fetch := fetcherFrom(map[string][]string{
		"outer.mod":  descriptor("Outer", "C:/mods/outer"),
		"inner.mod":  descriptor("Inner", "C:/mods/outer/nested"),
		"alpha2.mod": descriptor("Alpha2", "C:/mods/alpha2"),
	})
	reg, _ := Build([]string{"inner.mod", "outer.mod", "alpha2.mod"}, fetch, "C:/game")

	tests := []struct {
		key      string
		wantName string
		wantOK   bool
	}{
		{"c:/mods/outer/events/a.txt", "Outer", true},
		{"c:/mods/outer/nested/events/a.txt", "Inner", true},
		{"c:/game/events/a.txt", "Game", true},
		{"c:/mods/alpha/events/a.txt", "", false},
		{"c:/mods/alpha2/events/a.txt", "Alpha2", true},
		{"d:/elsewhere/a.txt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			layer, ok := reg.Lookup(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, layer.Name)
		})
	}
}

func TestLookupTieBreaksToLowerRank(t *testing.T) {
	r := &Registry{
		layers: []types.Layer{
			{Root: "c:/mods/bbb", Name: "Late", Rank: 7},
			{Root: "c:/mods/aaa", Name: "Early", Rank: 2},
		},
	}
	r.buildLookupOrder()

	assert.Equal(t, []int{1, 0}, r.lookupOrder)
}

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  Descriptor
	}{
		{
			name:  "quoted values",
			lines: []string{`name="Alpha"`, `path="C:/mods/alpha"`},
			want:  Descriptor{Name: "Alpha", Path: "C:/mods/alpha"},
		},
		{
			name:  "whitespace and case in keys",
			lines: []string{"  Name = \"Spaced Out\" \r\n", "PATH=C:/mods/spaced\n"},
			want:  Descriptor{Name: "Spaced Out", Path: "C:/mods/spaced"},
		},
		{
			name:  "block values and junk ignored",
			lines: []string{`tags={`, `"name=nope"`, `}`, `# comment`, `name="Real"`},
			want:  Descriptor{Name: "Real"},
		},
		{
			name:  "apostrophes are kept",
			lines: []string{`name='Tis Mod`, `path="C:/mods/it's"`},
			want:  Descriptor{Name: "'Tis Mod", Path: "C:/mods/it's"},
		},
		{
			name:  "unmatched quote is kept",
			lines: []string{`name="Half`},
			want:  Descriptor{Name: `"Half`},
		},
		{
			name:  "first occurrence wins",
			lines: []string{`name="One"`, `name="Two"`},
			want:  Descriptor{Name: "One"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDescriptor(tt.lines))
		})
	}
}
