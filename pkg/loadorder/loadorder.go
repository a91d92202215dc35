// Package loadorder reads the launcher's load order and mod descriptors.
//
// The two inputs have different shapes, so they get separate readers:
// ReadLoadOrder decodes the JSON load order file into an ordered list of
// entries, ReadLines returns a descriptor as raw text lines.
package loadorder

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultKey is the load order field holding the enabled mods
const DefaultKey = "enabled_mods"

// Reader reads load order data relative to a base directory
type Reader struct {
	fs      types.FS
	baseDir string
	logger  zerolog.Logger
}

// NewReader creates a Reader resolving relative names against baseDir
func NewReader(fs types.FS, baseDir string) *Reader {
	return &Reader{
		fs:      fs,
		baseDir: types.SlashPath(baseDir),
		logger:  logging.GetLogger("loadorder"),
	}
}

// BaseDir returns the directory relative names are resolved against
func (r *Reader) BaseDir() string {
	return r.baseDir
}

// Resolve returns the full path for name
func (r *Reader) Resolve(name string) string {
	slashed := types.SlashPath(name)
	if r.baseDir == "" || strings.HasPrefix(slashed, "/") || (len(slashed) >= 2 && slashed[1] == ':') {
		return slashed
	}
	return path.Join(r.baseDir, slashed)
}

// ReadLoadOrder decodes the JSON load order file and returns the entries
// listed under key, in order. An empty key means DefaultKey.
func (r *Reader) ReadLoadOrder(file, key string) ([]string, error) {
	if key == "" {
		key = DefaultKey
	}
	full := r.Resolve(file)

	data, err := r.fs.ReadFile(full)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrLoadOrderUnreadable,
			"cannot read load order (launch the game launcher once to create it)").
			WithDetail("path", full)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrLoadOrderUnreadable, "load order is not valid JSON").
			WithDetail("path", full)
	}

	raw, ok := doc[key]
	if !ok {
		return nil, errors.Newf(errors.ErrLoadOrderUnreadable, "load order has no %q field", key).
			WithDetail("path", full)
	}

	var entries []string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLoadOrderUnreadable, "load order field %q is not a list of strings", key).
			WithDetail("path", full)
	}

	r.logger.Debug().Str("path", full).Int("entries", len(entries)).Msg("Read load order")
	return entries, nil
}

// ReadLines returns the lines of a text file such as a mod descriptor.
// Line endings (LF or CRLF) are stripped.
func (r *Reader) ReadLines(name string) ([]string, error) {
	full := r.Resolve(name)

	data, err := r.fs.ReadFile(full)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDescriptorUnreadable, "cannot read descriptor").
			WithDetail("path", full)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrDescriptorUnreadable, "cannot scan descriptor").
			WithDetail("path", full)
	}
	return lines, nil
}
