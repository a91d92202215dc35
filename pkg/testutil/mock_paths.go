package testutil

import (
	"path/filepath"

	"github.com/arthur-debert/modconflict/pkg/types"
)

// MockPather serves fixed directories under a single root
type MockPather struct {
	Config    string
	State     string
	Documents string
}

var _ types.Pather = (*MockPather)(nil)

// NewMockPather lays out config, state and docs directories under root
func NewMockPather(root string) *MockPather {
	return &MockPather{
		Config:    filepath.Join(root, "config"),
		State:     filepath.Join(root, "state"),
		Documents: filepath.Join(root, "docs"),
	}
}

// ConfigDir returns the config directory
func (m *MockPather) ConfigDir() string {
	return m.Config
}

// ConfigFile returns config.toml inside the config directory
func (m *MockPather) ConfigFile() string {
	return filepath.Join(m.Config, "config.toml")
}

// StateDir returns the state directory
func (m *MockPather) StateDir() string {
	return m.State
}

// DocumentsDir returns the documents directory
func (m *MockPather) DocumentsDir() string {
	return m.Documents
}
