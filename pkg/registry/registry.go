package registry

import (
	"sort"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// ReservedNameSuffix is appended to an overlay named like the base layer
const ReservedNameSuffix = " (mod)"

// DescriptorFetcher returns the raw lines of the descriptor for a load
// order entry. It fails when the descriptor cannot be read.
type DescriptorFetcher func(layerID string) ([]string, error)

// Options configures registry construction
type Options struct {
	// RelativeBase resolves descriptor paths that are not absolute.
	// Launchers write local mods as "mod/<name>" relative to the user
	// data directory. Empty leaves relative paths untouched.
	RelativeBase string
}

// Registry is the immutable, precedence-ordered set of layers
type Registry struct {
	// layers in insertion order: overlays in load order, then the base layer
	layers []types.Layer
	index  map[types.LayerRoot]int

	// lookupOrder holds layer indices sorted for longest-prefix matching
	lookupOrder []int
}

// Build creates a registry from a load order, a descriptor fetcher and the
// base game root.
func Build(loadOrder []string, fetch DescriptorFetcher, baseRoot string) (*Registry, []types.Diagnostic) {
	return BuildWithOptions(loadOrder, fetch, baseRoot, Options{})
}

// BuildWithOptions creates a registry with custom options
func BuildWithOptions(loadOrder []string, fetch DescriptorFetcher, baseRoot string, opts Options) (*Registry, []types.Diagnostic) {
	logger := logging.GetLogger("registry")
	done := logging.LogOperationStart(logger, "build registry")
	defer done()

	r := &Registry{index: make(map[types.LayerRoot]int)}
	base := types.NewLayerRoot(baseRoot)
	var diags []types.Diagnostic

	for i, layerID := range loadOrder {
		rank := i + 1

		lines, err := fetch(layerID)
		if err != nil {
			logger.Warn().Err(err).Str("layer", layerID).Msg("Descriptor unreadable, skipping layer")
			diags = append(diags, types.NewDiagnostic(errors.ErrDescriptorUnreadable, layerID,
				"descriptor cannot be read, layer skipped (remove it from the load order if it was deleted)"))
			continue
		}

		desc := ParseDescriptor(lines)
		if !desc.Complete() {
			logger.Warn().Str("layer", layerID).Str("name", desc.Name).Str("path", desc.Path).
				Msg("Descriptor lacks name or path, skipping layer")
			diags = append(diags, types.NewDiagnostic(errors.ErrDescriptorInvalid, layerID,
				"descriptor has no name or no path, layer skipped"))
			continue
		}

		root := types.NewLayerRoot(resolve(desc.Path, opts.RelativeBase))
		if root == base {
			logger.Warn().Str("layer", layerID).Str("root", string(root)).
				Msg("Layer shares the game root, skipping layer")
			diags = append(diags, types.NewDiagnostic(errors.ErrDescriptorInvalid, layerID,
				"layer path %q is the game directory, layer skipped", desc.Path))
			continue
		}

		name := desc.Name
		if name == types.BaseLayerName {
			name += ReservedNameSuffix
			logger.Warn().Str("layer", layerID).Str("name", name).
				Msg("Layer uses the game's name, renamed")
			diags = append(diags, types.NewDiagnostic(errors.ErrDescriptorInvalid, layerID,
				"layer name %q is reserved for the game, shown as %q", desc.Name, name))
		}

		layer := types.Layer{Root: root, Name: name, Rank: rank}
		if existing, ok := r.index[root]; ok {
			logger.Debug().
				Str("root", string(root)).
				Str("previous", r.layers[existing].Name).
				Str("name", name).
				Msg("Two layers share a root, later one wins")
			r.layers[existing] = layer
			continue
		}

		r.index[root] = len(r.layers)
		r.layers = append(r.layers, layer)
		logger.Trace().Str("name", layer.Name).Int("rank", rank).Str("root", string(root)).Msg("Registered layer")
	}

	// The base layer goes in last so overlay processing can never touch it
	r.index[base] = len(r.layers)
	r.layers = append(r.layers, types.Layer{Root: base, Name: types.BaseLayerName, Rank: types.BaseLayerRank})

	r.buildLookupOrder()

	logger.Info().Int("layers", len(r.layers)).Int("skipped", len(diags)).Msg("Registry built")
	return r, diags
}

// resolve joins relative descriptor paths onto base
func resolve(p, base string) string {
	slashed := types.SlashPath(p)
	if base == "" || isAbs(slashed) {
		return slashed
	}
	return types.SlashPath(base) + "/" + slashed
}

// isAbs recognizes both POSIX and drive-letter roots regardless of host OS
func isAbs(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	return len(p) >= 2 && p[1] == ':'
}

// buildLookupOrder sorts layers by root length descending. Equal lengths
// fall back to the lower rank, then insertion order.
func (r *Registry) buildLookupOrder() {
	r.lookupOrder = make([]int, len(r.layers))
	for i := range r.layers {
		r.lookupOrder[i] = i
	}
	sort.SliceStable(r.lookupOrder, func(a, b int) bool {
		la, lb := r.layers[r.lookupOrder[a]], r.layers[r.lookupOrder[b]]
		if len(la.Root) != len(lb.Root) {
			return len(la.Root) > len(lb.Root)
		}
		return la.Rank < lb.Rank
	})
}

// Lookup returns the layer owning the normalized path key: the layer
// whose root is the longest prefix of key on a segment boundary.
func (r *Registry) Lookup(key string) (types.Layer, bool) {
	for _, i := range r.lookupOrder {
		if r.layers[i].Root.Contains(key) {
			return r.layers[i], true
		}
	}
	return types.Layer{}, false
}

// Get returns the layer registered for root
func (r *Registry) Get(root types.LayerRoot) (types.Layer, bool) {
	i, ok := r.index[root]
	if !ok {
		return types.Layer{}, false
	}
	return r.layers[i], true
}

// Base returns the base game layer
func (r *Registry) Base() types.Layer {
	return r.layers[len(r.layers)-1]
}

// Layers returns a copy of all layers ordered by rank
func (r *Registry) Layers() []types.Layer {
	out := make([]types.Layer, len(r.layers))
	copy(out, r.layers)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Rank < out[b].Rank
	})
	return out
}

// Len returns the number of registered layers, base included
func (r *Registry) Len() int {
	return len(r.layers)
}
