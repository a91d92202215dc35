package types

import "path"

// FileRecord is one file found under a scanned root
type FileRecord struct {
	// Path is the file path with forward slashes, case as found on disk
	Path string `json:"path"`

	// Key is the normalized (case-folded) path used for matching and sorting
	Key string `json:"-"`

	// BaseName is the bare file name, case as found on disk
	BaseName string `json:"name"`
}

// NewFileRecord builds a FileRecord for the file at p
func NewFileRecord(p string) FileRecord {
	slashed := SlashPath(p)
	return FileRecord{
		Path:     slashed,
		Key:      NormalizePath(slashed),
		BaseName: path.Base(slashed),
	}
}
