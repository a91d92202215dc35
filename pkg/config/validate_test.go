package config

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Game:      Game{Path: "/game", UserDataPath: "/docs/ck3"},
		Scan:      Scan{Extensions: []string{".txt"}},
		LoadOrder: LoadOrder{File: "dlc_load.json", Key: "enabled_mods", ModDir: "mod"},
		Output:    Output{Dir: ".", SummaryFile: "conflict_summary.txt"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		code    errors.ErrorCode
		wantKey string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "no game path", mutate: func(c *Config) { c.Game.Path = "" }, code: errors.ErrConfigMissing, wantKey: "game.path"},
		{name: "no user data", mutate: func(c *Config) { c.Game.UserDataPath = "" }, code: errors.ErrConfigMissing, wantKey: "game.user_data_path"},
		{name: "no load order", mutate: func(c *Config) { c.LoadOrder.File = "" }, code: errors.ErrConfigMissing, wantKey: "load_order.file"},
		{name: "no extensions", mutate: func(c *Config) { c.Scan.Extensions = nil }, code: errors.ErrInvalidInput, wantKey: "scan.extensions"},
		{name: "no summary file", mutate: func(c *Config) { c.Output.SummaryFile = "" }, code: errors.ErrInvalidInput, wantKey: "output.summary_file"},
		{name: "workshop is optional", mutate: func(c *Config) { c.Game.WorkshopPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code))
			assert.Equal(t, tt.wantKey, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestMissingNamesEnvVariable(t *testing.T) {
	err := validConfig()
	err.Game.Path = ""

	details := errors.GetErrorDetails(err.Validate())
	assert.Equal(t, "MODCONFLICT_GAME__PATH", details["env"])
	assert.Equal(t, "LOAD_ORDER__MOD_DIR", envName("load_order.mod_dir"))
}

func TestPathsUnderUserData(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, filepath.Join("/docs/ck3", "mod"), cfg.ModDirPath())
	assert.Equal(t, filepath.Join("/docs/ck3", "dlc_load.json"), cfg.LoadOrderPath())

	cfg.LoadOrder.File = "/elsewhere/load.json"
	assert.Equal(t, "/elsewhere/load.json", cfg.LoadOrderPath())
}
