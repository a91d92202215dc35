// Package index walks layer roots and records the files that take part in
// conflict detection.
package index

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/exclusions"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// Index maps normalized file paths to their records
type Index map[string]types.FileRecord

// Filter decides which files are indexed
type Filter struct {
	// Extensions are the allowed file name suffixes, matched case-insensitively
	Extensions []string

	// Exclusions drops files whose name contains one of its substrings
	Exclusions *exclusions.Checker
}

// Accept reports whether a file name passes the extension and exclusion filters
func (f Filter) Accept(name string) bool {
	lower := strings.ToLower(name)

	allowed := false
	for _, ext := range f.Extensions {
		if ext != "" && strings.HasSuffix(lower, strings.ToLower(ext)) {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	return f.Exclusions == nil || !f.Exclusions.ShouldExclude(name)
}

// Files recursively indexes root. A root that does not exist or cannot be
// read contributes no files; that and any unreadable subtree are reported
// as diagnostics rather than errors.
func Files(fsys types.FS, root string, filter Filter) (Index, []types.Diagnostic) {
	logger := logging.GetLogger("index")
	idx := make(Index)
	var diags []types.Diagnostic

	if root == "" {
		return idx, nil
	}

	info, err := fsys.Stat(root)
	if err != nil || !info.IsDir() {
		reason := "not a directory"
		if err != nil {
			reason = err.Error()
		}
		logger.Warn().Str("root", root).Str("reason", reason).Msg("Root unavailable, no files indexed")
		return idx, []types.Diagnostic{
			types.NewDiagnostic(errors.ErrRootUnavailable, root, "root cannot be scanned: %s", reason),
		}
	}

	done := logging.LogOperationStart(logger, "index "+root)
	defer done()

	walkErr := fsys.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Warn().Err(err).Str("path", p).Msg("Skipping unreadable path")
			diags = append(diags, types.NewDiagnostic(errors.ErrRootUnavailable, p, "path cannot be read: %v", err))
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !filter.Accept(info.Name()) {
			return nil
		}

		rec := types.NewFileRecord(p)
		idx[rec.Key] = rec
		return nil
	})
	if walkErr != nil {
		diags = append(diags, types.NewDiagnostic(errors.ErrRootUnavailable, root, "walk aborted: %v", walkErr))
	}

	logger.Info().Str("root", root).Int("files", len(idx)).Msg("Indexed root")
	return idx, diags
}

// Merge combines indices into a new one. Inputs are left untouched.
func Merge(indices ...Index) Index {
	size := 0
	for _, idx := range indices {
		size += len(idx)
	}
	merged := make(Index, size)
	for _, idx := range indices {
		for k, rec := range idx {
			merged[k] = rec
		}
	}
	return merged
}
