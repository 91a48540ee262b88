package transform

import "github.com/matzehuels/critpath/pkg/dag"

// AssignLevels returns the level of every node, indexed 1..n (index 0 unused).
//
// AssignLevels uses a longest-path algorithm over Kahn's topological order:
// sources are at level 0 and every other node sits one level below the
// deepest of its predecessors. Levels count edges, not durations, so they
// describe the shape of the dependency graph independently of the schedule.
// Renderers use them to align nodes into ranks.
//
// # Cycles
//
// AssignLevels assumes the graph is acyclic. Nodes on a cycle never reach
// zero in-degree and remain at level 0. Run [HasCycle] first.
//
// # Performance
//
// Time complexity is O(V + E).
func AssignLevels(g *dag.Graph) []int {
	levels := make([]int, g.Size()+1)
	for _, u := range g.TopoOrder() {
		for _, e := range g.Out(u) {
			v := g.Edge(e).To
			if lvl := levels[u] + 1; lvl > levels[v] {
				levels[v] = lvl
			}
		}
	}
	return levels
}

// Levels groups node ids by level, as computed by [AssignLevels].
// Level i of the result holds its nodes in ascending id order.
func Levels(g *dag.Graph) [][]int {
	levels := AssignLevels(g)
	maxLevel := 0
	for id := 1; id <= g.Size(); id++ {
		maxLevel = max(maxLevel, levels[id])
	}
	groups := make([][]int, maxLevel+1)
	for id := 1; id <= g.Size(); id++ {
		groups[levels[id]] = append(groups[levels[id]], id)
	}
	return groups
}
