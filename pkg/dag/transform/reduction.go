package transform

import "github.com/matzehuels/critpath/pkg/dag"

// RedundantEdges returns the edges of g that are implied by another path.
//
// An edge (u, v) is redundant when u reaches v through at least one
// intermediate node. In an activity-on-node project such a dependency never
// changes the schedule, because the longer path already forces v to start
// after u finishes. The graph is not modified; callers decide whether to
// warn about or drop the returned edges.
//
// Parallel duplicates of an edge are not reported against each other. The
// result is ordered by source id, then by insertion order.
//
// # Algorithm
//
// For each node u with two or more successors, one DFS marks every node
// reachable from u in two or more steps. An outgoing edge (u, v) is redundant
// when v is marked. Marks are generation stamps in a single slice, so the
// slice is never cleared between nodes.
//
// # Cycles
//
// RedundantEdges assumes g is acyclic. On a cyclic graph edges of a cycle may
// be reported.
//
// # Performance
//
// Time complexity is O(V·(V+E)) in the worst case. Space complexity is
// O(V), independent of how dense the reachability relation is.
func RedundantEdges(g *dag.Graph) []dag.Edge {
	n := g.Size()
	mark := make([]int, n+1)
	var stack []int

	var redundant []dag.Edge
	for u := 1; u <= n; u++ {
		out := g.Out(u)
		if len(out) < 2 {
			continue
		}

		// Seed with the successors of u's successors: those are two steps away.
		stack = stack[:0]
		for _, w := range g.Successors(u) {
			for _, x := range g.Successors(w) {
				if mark[x] != u {
					mark[x] = u
					stack = append(stack, x)
				}
			}
		}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, y := range g.Successors(x) {
				if mark[y] != u {
					mark[y] = u
					stack = append(stack, y)
				}
			}
		}

		for _, i := range out {
			if e := g.Edge(i); mark[e.To] == u {
				redundant = append(redundant, e)
			}
		}
	}
	return redundant
}
