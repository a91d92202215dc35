package conflicts

import (
	"sort"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/index"
	"github.com/arthur-debert/modconflict/pkg/types"
)

// Group is a file name found at two or more distinct paths
type Group struct {
	// Name is the display name: the smallest on-disk spelling
	Name string `json:"name"`

	// Key is the case-folded file name
	Key string `json:"-"`

	// Records are the occurrences, sorted by normalized path
	Records []types.FileRecord `json:"paths"`
}

// GroupDuplicates accumulates any number of indices by case-folded base
// name and keeps the names present at two or more distinct paths. A path
// present in several indices counts once.
func GroupDuplicates(indices ...index.Index) map[string]Group {
	byName := make(map[string]map[string]types.FileRecord)
	for _, idx := range indices {
		for key, rec := range idx {
			name := strings.ToLower(rec.BaseName)
			paths, ok := byName[name]
			if !ok {
				paths = make(map[string]types.FileRecord)
				byName[name] = paths
			}
			paths[key] = rec
		}
	}

	groups := make(map[string]Group)
	for name, paths := range byName {
		if len(paths) < 2 {
			continue
		}

		records := make([]types.FileRecord, 0, len(paths))
		for _, rec := range paths {
			records = append(records, rec)
		}
		sort.Slice(records, func(i, j int) bool {
			return records[i].Key < records[j].Key
		})

		display := records[0].BaseName
		for _, rec := range records[1:] {
			if rec.BaseName < display {
				display = rec.BaseName
			}
		}

		groups[name] = Group{Name: display, Key: name, Records: records}
	}
	return groups
}

// sortedGroupKeys returns the keys of groups in ascending order
func sortedGroupKeys(groups map[string]Group) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
