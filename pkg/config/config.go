package config

// Config is the complete modconflict configuration
type Config struct {
	Game      Game      `koanf:"game" toml:"game"`
	Scan      Scan      `koanf:"scan" toml:"scan"`
	LoadOrder LoadOrder `koanf:"load_order" toml:"load_order"`
	Output    Output    `koanf:"output" toml:"output"`
}

// Game locates the game installation and its user data
type Game struct {
	Path         string `koanf:"path" toml:"path"`
	WorkshopPath string `koanf:"workshop_path" toml:"workshop_path"`

	// UserDataPath holds the load order and the mod descriptors. It is
	// derived from the documents directory and UserDataSubdir when unset.
	UserDataPath   string `koanf:"user_data_path" toml:"user_data_path"`
	UserDataSubdir string `koanf:"user_data_subdir" toml:"user_data_subdir"`
}

// Scan controls which files take part in conflict detection
type Scan struct {
	Extensions     []string `koanf:"extensions" toml:"extensions"`
	ExclusionsFile string   `koanf:"exclusions_file" toml:"exclusions_file"`
	Exclusions     []string `koanf:"exclusions" toml:"exclusions"`
}

// LoadOrder locates the launcher's load order
type LoadOrder struct {
	File   string `koanf:"file" toml:"file"`
	Key    string `koanf:"key" toml:"key"`
	ModDir string `koanf:"mod_dir" toml:"mod_dir"`
}

// Output controls what gets written and where
type Output struct {
	Dir                string `koanf:"dir" toml:"dir"`
	SummaryFile        string `koanf:"summary_file" toml:"summary_file"`
	WriteIntermediates bool   `koanf:"write_intermediates" toml:"write_intermediates"`
	Styles             string `koanf:"styles" toml:"styles"`
}
