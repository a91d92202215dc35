package report

import (
	"encoding/json"

	"github.com/arthur-debert/modconflict/pkg/conflicts"
	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// Document is everything a run produced, shaped for JSON output
type Document struct {
	Layers      []types.Layer          `json:"layers"`
	Summary     []conflicts.LayerStats `json:"summary"`
	Conflicts   []conflicts.Conflict   `json:"conflicts"`
	Diagnostics []types.Diagnostic     `json:"diagnostics"`

	// Groups are the raw duplicate groups, only written as a dump
	Groups map[string]conflicts.Group `json:"-"`
}

// normalized replaces nil slices so that JSON shows empty lists
func (d Document) normalized() Document {
	if d.Layers == nil {
		d.Layers = []types.Layer{}
	}
	if d.Summary == nil {
		d.Summary = []conflicts.LayerStats{}
	}
	if d.Conflicts == nil {
		d.Conflicts = []conflicts.Conflict{}
	}
	if d.Diagnostics == nil {
		d.Diagnostics = []types.Diagnostic{}
	}
	if d.Groups == nil {
		d.Groups = map[string]conflicts.Group{}
	}
	return d
}

// JSON renders the whole document
func JSON(doc Document) ([]byte, error) {
	return marshal(doc.normalized())
}

func marshal(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode JSON")
	}
	return append(data, '\n'), nil
}
