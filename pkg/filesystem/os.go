package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/modconflict/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) Remove(name string) error {
	return os.Remove(name)
}

// Walk walks root like filepath.Walk, but a root that is a symlink to a
// directory is descended into. Paths passed to fn keep the root as given.
func (o *osFS) Walk(root string, fn filepath.WalkFunc) error {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil || resolved == root {
		return filepath.Walk(root, fn)
	}

	return filepath.Walk(resolved, func(p string, info os.FileInfo, err error) error {
		rel, relErr := filepath.Rel(resolved, p)
		if relErr != nil {
			return fn(p, info, err)
		}
		return fn(filepath.Join(root, rel), info, err)
	})
}
