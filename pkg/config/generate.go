package config

import (
	"strings"

	"github.com/arthur-debert/modconflict/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Template returns the defaults file with every value commented out,
// ready to be saved as a user config
func Template() string {
	return commentOutConfigValues(DefaultsContent())
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

// commentOutConfigValues comments out every assignment line, leaving
// comments, blank lines and section headers alone
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
