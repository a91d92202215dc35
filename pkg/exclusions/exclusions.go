// Package exclusions loads and applies the user's list of resolved
// conflicts: filename substrings that are never indexed.
package exclusions

import (
	"os"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/rs/zerolog"
)

// Checker matches file names against exclusion substrings
type Checker struct {
	patterns []string
	logger   zerolog.Logger
}

// NewChecker creates a Checker. Patterns are lower-cased; empty ones are dropped.
func NewChecker(patterns []string) *Checker {
	c := &Checker{logger: logging.GetLogger("exclusions")}
	seen := make(map[string]bool)
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		c.patterns = append(c.patterns, p)
	}
	return c
}

// ShouldExclude reports whether the lower-cased file name contains any pattern
func (c *Checker) ShouldExclude(fileName string) bool {
	lower := strings.ToLower(fileName)
	for _, p := range c.patterns {
		if strings.Contains(lower, p) {
			c.logger.Trace().Str("file", fileName).Str("pattern", p).Msg("File excluded")
			return true
		}
	}
	return false
}

// Patterns returns the normalized patterns
func (c *Checker) Patterns() []string {
	return append([]string(nil), c.patterns...)
}

// Load reads an exclusion list, one substring per line. A missing file
// yields no patterns. A file that exists but cannot be read also yields no
// patterns, plus a diagnostic. Blank lines and lines starting with "#" are
// ignored.
func Load(fs types.FS, path string) ([]string, []types.Diagnostic) {
	logger := logging.GetLogger("exclusions")
	if path == "" {
		return nil, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No exclusion list")
			return nil, nil
		}
		logger.Warn().Err(err).Str("path", path).Msg("Exclusion list unreadable, nothing excluded")
		return nil, []types.Diagnostic{
			types.NewDiagnostic(errors.ErrFileAccess, path, "exclusion list cannot be read, nothing excluded: %v", err),
		}
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}

	logger.Info().Str("path", path).Int("count", len(patterns)).Msg("Loaded exclusion list")
	return patterns, nil
}
