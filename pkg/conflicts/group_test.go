package conflicts

import (
	"testing"

	"github.com/arthur-debert/modconflict/pkg/index"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(paths ...string) index.Index {
	idx := make(index.Index)
	for _, p := range paths {
		rec := types.NewFileRecord(p)
		idx[rec.Key] = rec
	}
	return idx
}

func TestGroupDuplicatesAcrossIndices(t *testing.T) {
	user := indexOf("C:/docs/mod/local/events/a.txt")
	game := indexOf("C:/game/events/b.txt", "C:/game/common/only_game.txt")
	workshop := indexOf(
		"C:/workshop/100/events/a.txt",
		"C:/workshop/200/events/a.txt",
		"C:/workshop/100/events/B.TXT",
	)

	groups := GroupDuplicates(user, game, workshop)

	require.Len(t, groups, 2)
	a := groups["a.txt"]
	assert.Equal(t, "a.txt", a.Name)
	require.Len(t, a.Records, 3)
	assert.Equal(t, "C:/docs/mod/local/events/a.txt", a.Records[0].Path)
	assert.Equal(t, "C:/workshop/100/events/a.txt", a.Records[1].Path)
	assert.Equal(t, "C:/workshop/200/events/a.txt", a.Records[2].Path)

	b := groups["b.txt"]
	assert.Equal(t, "B.TXT", b.Name, "smallest on-disk spelling is displayed")
	assert.Len(t, b.Records, 2)

	_, ok := groups["only_game.txt"]
	assert.False(t, ok, "single occurrences are not groups")
}

func TestGroupDuplicatesSamePathInTwoIndices(t *testing.T) {
	// Overlapping scan roots can index the same file twice
	groups := GroupDuplicates(
		indexOf("C:/steam/workshop/100/a.txt"),
		indexOf("C:/steam/workshop/100/a.txt"),
	)
	assert.Empty(t, groups)
}

func TestGroupDuplicatesDoesNotModifyInputs(t *testing.T) {
	first := indexOf("/a/x.txt")
	second := indexOf("/b/x.txt")

	GroupDuplicates(first, second)

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}
