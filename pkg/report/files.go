package report

import (
	"path/filepath"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// Names of the stage dumps
const (
	LayersFile         = "layers.json"
	DuplicatesFile     = "duplicates.json"
	FinalConflictsFile = "final_conflicts.json"
)

// Output says where and what to write
type Output struct {
	Dir         string
	SummaryFile string

	// Intermediates adds the JSON dumps of the registry, the duplicate
	// groups and the attributed conflicts
	Intermediates bool
}

// WriteFiles writes the summary, and the dumps when asked, into out.Dir.
// It returns the paths written, summary first.
func WriteFiles(fsys types.FS, out Output, doc Document) ([]string, error) {
	logger := logging.GetLogger("report")
	doc = doc.normalized()

	if err := fsys.MkdirAll(out.Dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory %s", out.Dir).
			WithDetail("dir", out.Dir)
	}

	type file struct {
		name string
		data func() ([]byte, error)
	}
	files := []file{{out.SummaryFile, func() ([]byte, error) {
		return []byte(Text(doc.Conflicts, doc.Summary)), nil
	}}}
	if out.Intermediates {
		files = append(files,
			file{LayersFile, func() ([]byte, error) { return marshal(doc.Layers) }},
			file{DuplicatesFile, func() ([]byte, error) { return marshal(doc.Groups) }},
			file{FinalConflictsFile, func() ([]byte, error) { return marshal(doc.Conflicts) }},
		)
	}

	var written []string
	for _, f := range files {
		data, err := f.data()
		if err != nil {
			return written, err
		}

		target := filepath.Join(out.Dir, f.name)
		if err := fsys.WriteFile(target, data, 0644); err != nil {
			return written, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).
				WithDetail("path", target)
		}
		logger.Debug().Str("path", target).Int("bytes", len(data)).Msg("Wrote report file")
		written = append(written, target)
	}

	logger.Info().Int("files", len(written)).Str("dir", out.Dir).Msg("Report written")
	return written, nil
}
