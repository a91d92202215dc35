package types

import (
	"path"
	"strings"
)

// BaseLayerName is the reserved display name of the base layer
const BaseLayerName = "Game"

// BaseLayerRank is the precedence rank of the base layer
const BaseLayerRank = 0

// LayerRoot is a normalized absolute root path identifying one layer
type LayerRoot string

// Layer is one content layer: the base game or an overlay mod
type Layer struct {
	Root LayerRoot `json:"root"`
	Name string    `json:"name"`
	Rank int       `json:"rank"`
}

// IsBase reports whether the layer is the base layer
func (l Layer) IsBase() bool {
	return l.Rank == BaseLayerRank && l.Name == BaseLayerName
}

// Contains reports whether key (a normalized path) lives under the layer's
// root. Matching is done on whole path segments so that "c:/mods/alpha"
// does not claim "c:/mods/alpha2/x.txt".
func (r LayerRoot) Contains(key string) bool {
	root := string(r)
	if root == "" {
		return false
	}
	if key == root {
		return true
	}
	if strings.HasSuffix(root, "/") {
		return strings.HasPrefix(key, root)
	}
	return strings.HasPrefix(key, root+"/")
}

// SlashPath converts both separator styles to forward slashes without
// touching case. Windows paths read on any platform keep their drive letter.
func SlashPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return ""
	}
	cleaned := path.Clean(p)
	// path.Clean keeps a lone "/" and turns "c:/" into "c:"
	if strings.HasSuffix(cleaned, ":") {
		cleaned += "/"
	}
	return cleaned
}

// NormalizePath returns the case-folded, forward-slash form of p used as
// the comparison key for roots and files.
func NormalizePath(p string) string {
	return strings.ToLower(SlashPath(p))
}

// NewLayerRoot normalizes p into a LayerRoot
func NewLayerRoot(p string) LayerRoot {
	return LayerRoot(NormalizePath(p))
}
