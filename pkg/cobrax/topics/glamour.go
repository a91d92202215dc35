package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics for the terminal
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a path to a style file
	Width int    // word wrap width, 0 leaves glamour's default
}

// NewGlamourRenderer creates a markdown renderer with style auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown for the terminal. Non-markdown content and
// rendering failures fall back to the raw text.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
