package cpm

import "slices"

// MaxChains bounds the number of chains [Result.CriticalChains] returns.
// Graphs with many parallel critical branches have exponentially many chains.
const MaxChains = 64

// CriticalChains enumerates the ordered critical paths of an activity-on-node
// result. Each chain starts at a critical task with no incoming critical edge,
// follows critical edges, and ends at a critical task with no outgoing one.
// Chains are produced in lexicographic order of their ids; at most
// [MaxChains] are returned. An activity-on-arc result yields chains of event
// ids built from its critical activities.
func (r *Result) CriticalChains() [][]int {
	next := make(map[int][]int)
	hasPred := make(map[int]bool)
	var nodes []int

	add := func(from, to int) {
		next[from] = append(next[from], to)
		hasPred[to] = true
	}

	switch r.Mode {
	case ModeAOA:
		for _, a := range r.CriticalActivities {
			add(a.From, a.To)
		}
		for _, e := range r.Events {
			if e.Critical {
				nodes = append(nodes, e.ID)
			}
		}
	default:
		for _, d := range r.CriticalEdges {
			add(d.From, d.To)
		}
		nodes = r.CriticalPath
	}

	var (
		chains [][]int
		path   []int
	)
	var walk func(u int)
	walk = func(u int) {
		if len(chains) >= MaxChains {
			return
		}
		path = append(path, u)
		succ := next[u]
		if len(succ) == 0 {
			chains = append(chains, append([]int(nil), path...))
		}
		for _, v := range sortedUnique(succ) {
			walk(v)
		}
		path = path[:len(path)-1]
	}

	for _, id := range nodes {
		if hasPred[id] {
			continue
		}
		// Isolated critical nodes with no critical edge only form a chain
		// when they alone span the whole project.
		if len(next[id]) == 0 && !r.spans(id) {
			continue
		}
		walk(id)
	}
	return chains
}

// spans reports whether a single node covers the full project on its own.
func (r *Result) spans(id int) bool {
	if r.Mode == ModeAOA {
		return false
	}
	t, ok := r.Task(id)
	return ok && t.ES == 0 && t.EF == r.Duration
}

func sortedUnique(ids []int) []int {
	if len(ids) < 2 {
		return ids
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
