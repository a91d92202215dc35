package testutil

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/stretchr/testify/require"
)

// Default locations used by GameSetup. They are forward-slash absolute
// paths so they work with the in-memory filesystem on every platform.
const (
	DefaultUserDataDir = "/docs/Paradox Interactive/Crusader Kings III"
	DefaultGameDir     = "/steam/steamapps/common/Crusader Kings III/game"
	DefaultWorkshopDir = "/steam/steamapps/workshop/content/1158310"
)

// GameSetup declaratively builds a game install, a user data directory
// and a set of mods on an in-memory filesystem.
type GameSetup struct {
	FS          types.FS
	UserDataDir string
	GameDir     string
	WorkshopDir string

	t         *testing.T
	loadOrder []string
}

// NewGameSetup creates an empty setup with the default directories
func NewGameSetup(t *testing.T) *GameSetup {
	t.Helper()
	return NewGameSetupIn(t, NewTestFS(), "/")
}

// NewGameSetupIn creates an empty setup on fsys with the default
// directories placed under base. Use it with a real filesystem and
// t.TempDir() when the code under test opens files itself.
func NewGameSetupIn(t *testing.T, fsys types.FS, base string) *GameSetup {
	t.Helper()

	g := &GameSetup{
		FS:          fsys,
		UserDataDir: path.Join(base, DefaultUserDataDir),
		GameDir:     path.Join(base, DefaultGameDir),
		WorkshopDir: path.Join(base, DefaultWorkshopDir),
		t:           t,
	}
	for _, dir := range []string{g.UserDataDir + "/mod", g.GameDir, g.WorkshopDir} {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
	}
	return g
}

// AddGameFile adds a file to the base game
func (g *GameSetup) AddGameFile(rel string) string {
	g.t.Helper()
	p := path.Join(g.GameDir, rel)
	WriteFiles(g.t, g.FS, map[string]string{p: "game"})
	return p
}

// AddLocalMod creates a mod living in the user data "mod" directory. Its
// descriptor uses a relative path, as launchers write for local mods.
// The mod is appended to the load order.
func (g *GameSetup) AddLocalMod(id, name string, files ...string) string {
	g.t.Helper()
	root := path.Join(g.UserDataDir, "mod", id)
	g.addMod(id, name, "mod/"+id, root, files)
	return root
}

// AddWorkshopMod creates a mod in the workshop directory with an absolute
// descriptor path and appends it to the load order.
func (g *GameSetup) AddWorkshopMod(id, name string, files ...string) string {
	g.t.Helper()
	root := path.Join(g.WorkshopDir, id)
	g.addMod(id, name, root, root, files)
	return root
}

func (g *GameSetup) addMod(id, name, descriptorPath, root string, files []string) {
	g.t.Helper()

	entry := "mod/" + id + ".mod"
	descriptor := strings.Join([]string{
		"version=\"1.0\"",
		"tags={",
		"\t\"Gameplay\"",
		"}",
		fmt.Sprintf("name=\"%s\"", name),
		"supported_version=\"1.12.*\"",
		fmt.Sprintf("path=\"%s\"", descriptorPath),
	}, "\n") + "\n"

	contents := map[string]string{
		path.Join(g.UserDataDir, entry): descriptor,
	}
	for _, f := range files {
		contents[path.Join(root, f)] = name
	}
	WriteFiles(g.t, g.FS, contents)
	g.loadOrder = append(g.loadOrder, entry)
}

// RemoveDescriptor deletes a mod descriptor while keeping it in the load order
func (g *GameSetup) RemoveDescriptor(id string) {
	g.t.Helper()
	p := path.Join(g.UserDataDir, "mod", id+".mod")
	require.NoError(g.t, g.FS.Remove(p))
}

// LoadOrder returns the load order entries in order
func (g *GameSetup) LoadOrder() []string {
	return append([]string(nil), g.loadOrder...)
}

// WriteLoadOrder writes dlc_load.json with the accumulated load order
func (g *GameSetup) WriteLoadOrder() string {
	g.t.Helper()

	data, err := json.Marshal(map[string]interface{}{
		"enabled_mods":  g.loadOrder,
		"disabled_dlcs": []string{},
	})
	require.NoError(g.t, err)

	p := path.Join(g.UserDataDir, "dlc_load.json")
	WriteFiles(g.t, g.FS, map[string]string{p: string(data)})
	return p
}
