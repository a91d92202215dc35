package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows separators", `C:\Mods\Alpha`, "c:/mods/alpha"},
		{"trailing slash", "C:/game/", "c:/game"},
		{"drive root", `D:\`, "d:/"},
		{"posix", "/Home/User/Mods/../Game", "/home/user/game"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}

func TestLayerRootContains(t *testing.T) {
	root := NewLayerRoot("C:/mods/alpha")

	assert.True(t, root.Contains("c:/mods/alpha"))
	assert.True(t, root.Contains("c:/mods/alpha/events/a.txt"))
	assert.False(t, root.Contains("c:/mods/alpha2/events/a.txt"), "sibling with shared prefix")
	assert.False(t, root.Contains("c:/mods"))
	assert.False(t, LayerRoot("").Contains("c:/mods"))
	assert.True(t, NewLayerRoot(`D:\`).Contains("d:/steam/x.txt"))
}

func TestLayerIsBase(t *testing.T) {
	assert.True(t, Layer{Name: BaseLayerName, Rank: BaseLayerRank}.IsBase())
	assert.False(t, Layer{Name: "Alpha", Rank: 1}.IsBase())
	assert.False(t, Layer{Name: "Game", Rank: 3}.IsBase(), "an overlay named Game is not the base")
}

func TestNewFileRecord(t *testing.T) {
	rec := NewFileRecord(`C:\Mods\Alpha\events\My_Events.TXT`)

	assert.Equal(t, "C:/Mods/Alpha/events/My_Events.TXT", rec.Path)
	assert.Equal(t, "c:/mods/alpha/events/my_events.txt", rec.Key)
	assert.Equal(t, "My_Events.TXT", rec.BaseName)
}
