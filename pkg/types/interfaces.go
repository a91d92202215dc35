package types

import (
	"io/fs"
	"path/filepath"
)

// FS is the filesystem abstraction used by modconflict
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error

	// Walk visits every file and directory under root in lexical order
	Walk(root string, fn filepath.WalkFunc) error
}

// Pather provides the well-known directories modconflict reads from and writes to
type Pather interface {
	// ConfigDir returns the config directory for modconflict
	ConfigDir() string

	// ConfigFile returns the default user configuration file
	ConfigFile() string

	// StateDir returns the state directory for modconflict
	StateDir() string

	// DocumentsDir returns the user's documents directory, under which
	// the game keeps its user data
	DocumentsDir() string
}
