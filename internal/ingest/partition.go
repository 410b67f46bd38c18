package ingest

import (
	"sort"

	"github.com/gyeh/footstats/internal/model"
)

// LeaguePartition is the slice of the combined dataset for one league.
type LeaguePartition struct {
	League  string
	Matches []model.Match
}

// PartitionByLeague groups matches by league name. Partitions are sorted by
// league name; matches keep their combined order within a partition.
func PartitionByLeague(matches []model.Match) []LeaguePartition {
	idx := make(map[string]int)
	var parts []LeaguePartition
	for _, m := range matches {
		i, ok := idx[m.League]
		if !ok {
			i = len(parts)
			idx[m.League] = i
			parts = append(parts, LeaguePartition{League: m.League})
		}
		parts[i].Matches = append(parts[i].Matches, m)
	}
	sort.Slice(parts, func(i, j int) bool {
		return parts[i].League < parts[j].League
	})
	return parts
}
