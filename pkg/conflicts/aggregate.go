package conflicts

import (
	"math"
	"sort"

	"github.com/arthur-debert/modconflict/pkg/types"
)

// LayerStats summarizes the conflicts of one overlay layer
type LayerStats struct {
	Name string `json:"name"`

	// TotalConflicts counts conflicting files, once per file
	TotalConflicts int `json:"total_conflicts"`

	// Partners are the other overlays sharing at least one file, sorted
	Partners []string `json:"partners"`

	// GameConflicts counts conflicting files also present in the base game
	GameConflicts int `json:"game_conflicts"`

	// MinRank is the lowest rank the layer was seen with
	MinRank int `json:"min_rank"`
}

type layerTally struct {
	total    int
	game     int
	minRank  int
	partners map[string]bool
}

// Aggregate computes per-layer statistics for overlay layers. Conflicts
// spanning fewer than two distinct layers are ignored, each layer counts a
// file once however many of its paths carry it, and layers with neither
// partners nor game conflicts are left out. Results are ordered by
// (MinRank, Name).
func Aggregate(conflicts []Conflict) []LayerStats {
	tallies := make(map[string]*layerTally)

	for _, c := range conflicts {
		names := distinctLayers(c.Occurrences)
		if len(names) <= 1 {
			continue
		}
		withGame := names[types.BaseLayerName]
		counted := make(map[string]bool)

		for _, o := range c.Occurrences {
			if o.Layer == types.BaseLayerName {
				continue
			}

			tally, ok := tallies[o.Layer]
			if !ok {
				tally = &layerTally{minRank: math.MaxInt, partners: make(map[string]bool)}
				tallies[o.Layer] = tally
			}
			if o.Rank < tally.minRank {
				tally.minRank = o.Rank
			}

			if counted[o.Layer] {
				continue
			}
			counted[o.Layer] = true

			tally.total++
			if withGame {
				tally.game++
			}
			for name := range names {
				if name != o.Layer && name != types.BaseLayerName {
					tally.partners[name] = true
				}
			}
		}
	}

	stats := make([]LayerStats, 0, len(tallies))
	for name, tally := range tallies {
		if len(tally.partners) == 0 && tally.game == 0 {
			continue
		}
		stats = append(stats, LayerStats{
			Name:           name,
			TotalConflicts: tally.total,
			Partners:       sortedSet(tally.partners),
			GameConflicts:  tally.game,
			MinRank:        tally.minRank,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].MinRank != stats[j].MinRank {
			return stats[i].MinRank < stats[j].MinRank
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}
