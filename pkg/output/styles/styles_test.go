package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	require.NoError(t, LoadStylesFromData(defaultStyles))

	expectedStyles := []string{
		"Header", "SectionHeader", "Rank", "LayerName", "Game", "Count",
		"Partner", "None", "FileName", "FilePath", "Diagnostic", "Error",
		"Muted", "Indent",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestGetStyle(t *testing.T) {
	require.NoError(t, LoadStylesFromData(defaultStyles))

	assert.True(t, GetStyle("Header").GetBold())
	assert.False(t, GetStyle("NonExistentStyle").GetBold(), "unknown names get a blank style")
}

func TestMergeStyles(t *testing.T) {
	require.NoError(t, LoadStylesFromData([]byte(`
styles:
  Strong:
    bold: true
  Slanted:
    italic: true
`)))
	t.Cleanup(func() { _ = LoadStylesFromData(defaultStyles) })

	merged := MergeStyles("Strong", "Slanted")
	assert.True(t, merged.GetBold())
	assert.True(t, merged.GetItalic())
}

func TestBuildStyle(t *testing.T) {
	colors = map[string]lipgloss.AdaptiveColor{"x": {Light: "#000000", Dark: "#FFFFFF"}}
	t.Cleanup(func() { _ = LoadStylesFromData(defaultStyles) })

	style := buildStyle(StyleDef{
		Underline:   true,
		Foreground:  "x",
		Background:  "missing",
		Width:       10,
		Align:       "right",
		PaddingLeft: 2,
	})

	assert.True(t, style.GetUnderline())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, style.GetForeground())
	assert.Equal(t, 10, style.GetWidth())
	assert.Equal(t, lipgloss.Right, style.GetAlignHorizontal())
	assert.Equal(t, 2, style.GetPaddingLeft())
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { _ = LoadStylesFromData(defaultStyles) })

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("styles:\n  Only:\n    bold: true\n"), 0644))

		require.NoError(t, LoadStyles(path))
		assert.Len(t, StyleRegistry, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, LoadStyles(filepath.Join(t.TempDir(), "nope.yaml")))
	})

	t.Run("invalid yaml keeps registry", func(t *testing.T) {
		require.NoError(t, LoadStylesFromData(defaultStyles))
		before := len(StyleRegistry)

		assert.Error(t, LoadStylesFromData([]byte("styles: [unclosed")))
		assert.Len(t, StyleRegistry, before)
	})
}
