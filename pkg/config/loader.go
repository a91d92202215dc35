package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/paths"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix starts every configuration environment variable
const EnvPrefix = "MODCONFLICT_"

// LoadOptions selects the sources layered over the embedded defaults
type LoadOptions struct {
	// File is an explicit config file. It must exist.
	File string

	// Flags are explicitly set command-line values keyed by config path,
	// e.g. "game.path"
	Flags map[string]interface{}

	// Paths locates the default config file and the documents directory
	Paths types.Pather
}

// Load builds the configuration from all sources. The result is not
// validated; call Validate before using it for a scan.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	userFile, err := userConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if userFile != "" {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userFile).
				WithDetail("path", userFile)
		}
		logger.Debug().Str("path", userFile).Msg("Loaded user config")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcessConfig(&cfg, opts.Paths)

	logger.Debug().
		Str("game", cfg.Game.Path).
		Str("workshop", cfg.Game.WorkshopPath).
		Str("user_data", cfg.Game.UserDataPath).
		Strs("extensions", cfg.Scan.Extensions).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps MODCONFLICT_SECTION__KEY to section.key. Variables without
// a section separator are not configuration and are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !strings.Contains(key, "__") {
		return ""
	}
	return strings.ReplaceAll(key, "__", ".")
}

func userConfigFile(opts LoadOptions) (string, error) {
	if opts.File != "" {
		p := paths.ExpandHome(opts.File)
		if _, err := os.Stat(p); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s cannot be read", p).
				WithDetail("path", p)
		}
		return p, nil
	}

	if opts.Paths == nil {
		return "", nil
	}
	p := opts.Paths.ConfigFile()
	if _, err := os.Stat(p); err != nil {
		return "", nil
	}
	return p, nil
}

func postProcessConfig(cfg *Config, pather types.Pather) {
	cfg.Game.Path = paths.ExpandHome(cfg.Game.Path)
	cfg.Game.WorkshopPath = paths.ExpandHome(cfg.Game.WorkshopPath)
	cfg.Game.UserDataPath = paths.ExpandHome(cfg.Game.UserDataPath)
	if cfg.Game.UserDataPath == "" && cfg.Game.UserDataSubdir != "" && pather != nil && pather.DocumentsDir() != "" {
		cfg.Game.UserDataPath = filepath.Join(pather.DocumentsDir(), filepath.FromSlash(cfg.Game.UserDataSubdir))
	}

	cfg.Scan.Extensions = normalizeExtensions(cfg.Scan.Extensions)

	cfg.Scan.ExclusionsFile = paths.ExpandHome(cfg.Scan.ExclusionsFile)
	if cfg.Scan.ExclusionsFile != "" && !filepath.IsAbs(cfg.Scan.ExclusionsFile) && pather != nil {
		cfg.Scan.ExclusionsFile = filepath.Join(pather.ConfigDir(), cfg.Scan.ExclusionsFile)
	}

	cfg.Output.Dir = paths.ExpandHome(cfg.Output.Dir)
	cfg.Output.Styles = paths.ExpandHome(cfg.Output.Styles)
}

// normalizeExtensions lower-cases extensions, adds the leading dot and
// drops blanks and repeats
func normalizeExtensions(exts []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}
