package conflicts

import (
	"sort"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// Resolver finds the layer owning a normalized path
type Resolver interface {
	Lookup(key string) (types.Layer, bool)
}

// Occurrence is one copy of a conflicting file, attributed to its layer
type Occurrence struct {
	Rank  int    `json:"rank"`
	Layer string `json:"layer"`
	Path  string `json:"path"`
	Key   string `json:"-"`
}

// Conflict is a file name provided by two or more distinct layers
type Conflict struct {
	Name        string       `json:"name"`
	Key         string       `json:"-"`
	Occurrences []Occurrence `json:"occurrences"`
}

// Layers returns the distinct layer names involved, sorted
func (c Conflict) Layers() []string {
	return sortedSet(distinctLayers(c.Occurrences))
}

// Attribute assigns every grouped path to the layer owning it, orders the
// occurrences by (rank, path) and keeps the names that span at least two
// distinct layers. Paths owned by no layer are dropped and reported.
// Conflicts are returned in file name order.
func Attribute(groups map[string]Group, resolver Resolver) ([]Conflict, []types.Diagnostic) {
	logger := logging.GetLogger("conflicts.attribute")
	done := logging.LogOperationStart(logger, "attribute")
	defer done()

	var conflicts []Conflict
	var diags []types.Diagnostic

	for _, key := range sortedGroupKeys(groups) {
		group := groups[key]

		occurrences := make([]Occurrence, 0, len(group.Records))
		for _, rec := range group.Records {
			layer, ok := resolver.Lookup(rec.Key)
			if !ok {
				logger.Debug().Str("path", rec.Path).Msg("Occurrence matches no layer, dropped")
				diags = append(diags, types.NewDiagnostic(errors.ErrUnattributable, rec.Path,
					"file is not under any layer in the load order"))
				continue
			}
			occurrences = append(occurrences, Occurrence{
				Rank:  layer.Rank,
				Layer: layer.Name,
				Path:  rec.Path,
				Key:   rec.Key,
			})
		}

		if len(distinctLayers(occurrences)) < 2 {
			continue
		}

		sort.Slice(occurrences, func(i, j int) bool {
			if occurrences[i].Rank != occurrences[j].Rank {
				return occurrences[i].Rank < occurrences[j].Rank
			}
			return occurrences[i].Key < occurrences[j].Key
		})

		conflicts = append(conflicts, Conflict{
			Name:        group.Name,
			Key:         group.Key,
			Occurrences: occurrences,
		})
	}

	logger.Info().
		Int("groups", len(groups)).
		Int("conflicts", len(conflicts)).
		Int("unattributed", len(diags)).
		Msg("Attributed duplicates")
	return conflicts, diags
}

func distinctLayers(occurrences []Occurrence) map[string]bool {
	names := make(map[string]bool)
	for _, o := range occurrences {
		names[o.Layer] = true
	}
	return names
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
