// Package styles defines the visual styling for modconflict's terminal
// output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. The definitions live in styles.yaml, embedded in
// the binary; LoadStyles swaps in a user-provided file.
package styles

import (
	_ "embed"
	"os"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	Align        string `yaml:"align,omitempty"`
	MarginLeft   int    `yaml:"marginLeft,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

// Adaptive colors loaded from YAML
var colors map[string]lipgloss.AdaptiveColor

func init() {
	if err := LoadStylesFromData(defaultStyles); err != nil {
		panic("failed to load embedded styles: " + err.Error())
	}
}

// LoadStyles loads style configuration from a YAML file
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read styles file %s", path)
	}
	return LoadStylesFromData(data)
}

// LoadStylesFromData replaces the registry with the styles described by
// data. The registry is left untouched when data does not parse.
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	StyleRegistry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		StyleRegistry[name] = buildStyle(def)
	}
	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	// Unknown color names are ignored
	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "left":
		style = style.Align(lipgloss.Left)
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// MergeStyles combines multiple styles
func MergeStyles(names ...string) lipgloss.Style {
	result := lipgloss.NewStyle()
	for _, name := range names {
		result = result.Inherit(GetStyle(name))
	}
	return result
}
