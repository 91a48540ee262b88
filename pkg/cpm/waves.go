package cpm

import (
	"slices"
	"sort"
)

// computeWaves groups tasks by their earliest start time and records each
// task's wave index on res.Tasks.
func computeWaves(res *Result) []Wave {
	groups := make(map[float64][]int)
	for _, t := range res.Tasks {
		groups[t.ES] = append(groups[t.ES], t.ID)
	}

	starts := make([]float64, 0, len(groups))
	for es := range groups {
		starts = append(starts, es)
	}
	slices.Sort(starts)

	waves := make([]Wave, len(starts))
	for i, es := range starts {
		ids := groups[es]
		critical := false
		for _, id := range ids {
			res.Tasks[id-1].Wave = i
			if res.Tasks[id-1].Critical {
				critical = true
			}
		}

		// Critical tasks first; ids arrive ascending.
		sort.SliceStable(ids, func(a, b int) bool {
			return res.Tasks[ids[a]-1].Critical && !res.Tasks[ids[b]-1].Critical
		})

		waves[i] = Wave{Index: i, Start: es, TaskIDs: ids, Critical: critical}
	}
	return waves
}
