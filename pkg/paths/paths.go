package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	EnvConfigDir    = "MODCONFLICT_CONFIG_DIR"
	EnvStateDir     = "MODCONFLICT_STATE_DIR"
	EnvDocumentsDir = "MODCONFLICT_DOCUMENTS_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for modconflict-specific files
	AppDirName = "modconflict"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "modconflict.log"
)

// Paths holds the resolved directories
type Paths struct {
	configDir    string
	stateDir     string
	documentsDir string
}

// New resolves directories from the environment
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	if dir := os.Getenv(EnvDocumentsDir); dir != "" {
		p.documentsDir = ExpandHome(dir)
	} else {
		p.documentsDir = xdg.UserDirs.Documents
	}

	return p
}

// ConfigDir returns the config directory for modconflict
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the default user configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StateDir returns the state directory for modconflict
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// DocumentsDir returns the user's documents directory
func (p *Paths) DocumentsDir() string {
	return p.documentsDir
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
