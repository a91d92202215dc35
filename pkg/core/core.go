package core

import (
	"github.com/arthur-debert/modconflict/pkg/config"
	"github.com/arthur-debert/modconflict/pkg/conflicts"
	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/exclusions"
	"github.com/arthur-debert/modconflict/pkg/filesystem"
	"github.com/arthur-debert/modconflict/pkg/index"
	"github.com/arthur-debert/modconflict/pkg/loadorder"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/registry"
	"github.com/arthur-debert/modconflict/pkg/report"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// FindOptions defines the options for FindConflicts and ListLayers
type FindOptions struct {
	// FS is the filesystem to read from. Nil means the real one.
	FS types.FS

	// Config is the loaded configuration
	Config *config.Config
}

// Result holds every stage output of a run
type Result struct {
	Registry  *registry.Registry
	Groups    map[string]conflicts.Group
	Conflicts []conflicts.Conflict
	Stats     []conflicts.LayerStats

	// IndexedFiles counts the files accepted across all roots
	IndexedFiles int

	Diagnostics []types.Diagnostic
}

// Document shapes the result for rendering and persisting
func (r *Result) Document() report.Document {
	return report.Document{
		Layers:      r.Registry.Layers(),
		Summary:     r.Stats,
		Conflicts:   r.Conflicts,
		Diagnostics: r.Diagnostics,
		Groups:      r.Groups,
	}
}

// LayersResult holds the registry built from the load order
type LayersResult struct {
	Registry    *registry.Registry
	LoadOrder   []string
	Diagnostics []types.Diagnostic
}

// FindConflicts runs the full pipeline
func FindConflicts(opts FindOptions) (*Result, error) {
	log := logging.GetLogger("core")
	log.Debug().Str("command", "FindConflicts").Msg("Executing command")

	fsys, cfg, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	checker, exclusionDiags := loadExclusions(fsys, cfg)

	layers, err := buildLayers(fsys, cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Registry:    layers.Registry,
		Diagnostics: append(exclusionDiags, layers.Diagnostics...),
	}

	filter := index.Filter{Extensions: cfg.Scan.Extensions, Exclusions: checker}
	var indices []index.Index
	for _, root := range scanRoots(cfg) {
		idx, diags := index.Files(fsys, root, filter)
		indices = append(indices, idx)
		result.IndexedFiles += len(idx)
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	result.Groups = conflicts.GroupDuplicates(indices...)

	found, diags := conflicts.Attribute(result.Groups, result.Registry)
	result.Conflicts = found
	result.Diagnostics = append(result.Diagnostics, diags...)

	result.Stats = conflicts.Aggregate(found)

	log.Info().
		Str("command", "FindConflicts").
		Int("layers", result.Registry.Len()).
		Int("files", result.IndexedFiles).
		Int("duplicates", len(result.Groups)).
		Int("conflicts", len(result.Conflicts)).
		Int("diagnostics", len(result.Diagnostics)).
		Msg("Command finished")
	return result, nil
}

// ListLayers builds the registry without scanning any files
func ListLayers(opts FindOptions) (*LayersResult, error) {
	log := logging.GetLogger("core")
	log.Debug().Str("command", "ListLayers").Msg("Executing command")

	fsys, cfg, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	result, err := buildLayers(fsys, cfg)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ListLayers").Int("layers", result.Registry.Len()).Msg("Command finished")
	return result, nil
}

func prepare(opts FindOptions) (types.FS, *config.Config, error) {
	if opts.Config == nil {
		return nil, nil, errors.New(errors.ErrConfigMissing, "no configuration given")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return fsys, opts.Config, nil
}

func loadExclusions(fsys types.FS, cfg *config.Config) (*exclusions.Checker, []types.Diagnostic) {
	patterns, diags := exclusions.Load(fsys, cfg.Scan.ExclusionsFile)
	patterns = append(patterns, cfg.Scan.Exclusions...)
	return exclusions.NewChecker(patterns), diags
}

func buildLayers(fsys types.FS, cfg *config.Config) (*LayersResult, error) {
	reader := loadorder.NewReader(fsys, cfg.Game.UserDataPath)

	entries, err := reader.ReadLoadOrder(cfg.LoadOrder.File, cfg.LoadOrder.Key)
	if err != nil {
		return nil, err
	}

	reg, diags := registry.BuildWithOptions(entries, reader.ReadLines, cfg.Game.Path,
		registry.Options{RelativeBase: cfg.Game.UserDataPath})

	return &LayersResult{Registry: reg, LoadOrder: entries, Diagnostics: diags}, nil
}

// scanRoots lists the directories to index: local mods, the game, and the
// workshop when configured
func scanRoots(cfg *config.Config) []string {
	roots := []string{cfg.ModDirPath(), cfg.Game.Path}
	if cfg.Game.WorkshopPath != "" {
		roots = append(roots, cfg.Game.WorkshopPath)
	}
	return roots
}
