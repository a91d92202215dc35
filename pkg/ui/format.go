// Package ui picks the output format for command results.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto detects the format from the output's terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders styled output with colors
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatJSON renders machine-readable JSON output
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("accepted", "auto, term, text, json")
	}
}

// DetectFormat determines the output format from the environment and the
// terminal behind out. Anything that is not a color-capable terminal gets
// plain text.
func DetectFormat(out io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	file, ok := out.(*os.File)
	if !ok {
		return FormatText
	}

	// Piped or redirected
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(file).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// Resolve replaces FormatAuto with the detected format for out
func Resolve(f Format, out io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	return DetectFormat(out)
}
