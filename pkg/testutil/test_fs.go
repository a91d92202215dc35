package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modconflict/pkg/filesystem"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFiles writes every path -> content pair into fsys, creating parents.
func WriteFiles(t *testing.T, fsys types.FS, files map[string]string) {
	t.Helper()

	for p, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, fsys.WriteFile(p, []byte(content), 0644))
	}
}
