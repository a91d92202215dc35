package config

import (
	"path/filepath"

	"github.com/arthur-debert/modconflict/pkg/errors"
)

// Validate checks that the configuration can drive a scan
func (c *Config) Validate() error {
	if c.Game.Path == "" {
		return missing("game.path", "game path is not configured")
	}
	if c.Game.UserDataPath == "" {
		return missing("game.user_data_path", "game user data path is not configured")
	}
	if c.LoadOrder.File == "" {
		return missing("load_order.file", "load order file is not configured")
	}
	if len(c.Scan.Extensions) == 0 {
		return errors.New(errors.ErrInvalidInput, "scan.extensions is empty, no file would be scanned").
			WithDetail("key", "scan.extensions")
	}
	if c.Output.SummaryFile == "" {
		return errors.New(errors.ErrInvalidInput, "output.summary_file is empty").
			WithDetail("key", "output.summary_file")
	}
	return nil
}

func missing(key, msg string) error {
	return errors.New(errors.ErrConfigMissing, msg).
		WithDetail("key", key).
		WithDetail("env", EnvPrefix+envName(key))
}

// envName is the inverse of envKey without the prefix
func envName(key string) string {
	out := make([]byte, 0, len(key)+2)
	for i := 0; i < len(key); i++ {
		switch c := key[i]; {
		case c == '.':
			out = append(out, '_', '_')
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// ModDirPath returns the directory holding local mods
func (c *Config) ModDirPath() string {
	return c.underUserData(c.LoadOrder.ModDir)
}

// LoadOrderPath returns the load order file
func (c *Config) LoadOrderPath() string {
	return c.underUserData(c.LoadOrder.File)
}

func (c *Config) underUserData(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Game.UserDataPath, p)
}
