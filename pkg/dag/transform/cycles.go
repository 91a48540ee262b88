package transform

import "github.com/matzehuels/critpath/pkg/dag"

const (
	white = iota
	gray
	black
)

// HasCycle reports whether g contains a directed cycle.
//
// HasCycle uses depth-first search with white/gray/black coloring. A node is
// gray while it is on the DFS stack and black once all of its descendants
// have been visited. Reaching a gray node closes a cycle, and the search
// stops immediately.
//
// Every white node is used as a DFS root in ascending id order, so
// disconnected components and self loops are covered.
//
// # Performance
//
// Time complexity is O(V + E). Space complexity is O(V) for the colors and
// the recursion stack.
func HasCycle(g *dag.Graph) bool {
	return FindCycle(g) != nil
}

// FindCycle returns the nodes of the first directed cycle found, in edge
// order, with the first node repeated at the end (for example [2 3 4 2]).
// It returns nil if g is acyclic.
//
// The traversal is the same as [HasCycle]; the DFS stack is kept so that the
// cycle can be reported to the user.
func FindCycle(g *dag.Graph) []int {
	n := g.Size()
	color := make([]int, n+1)
	stack := make([]int, 0, n)
	var cycle []int

	var dfs func(u int) bool
	dfs = func(u int) bool {
		color[u] = gray
		stack = append(stack, u)
		for _, e := range g.Out(u) {
			v := g.Edge(e).To
			switch color[v] {
			case white:
				if dfs(v) {
					return true
				}
			case gray:
				cycle = closeCycle(stack, v)
				return true
			}
		}
		stack = stack[:len(stack)-1]
		color[u] = black
		return false
	}

	for id := 1; id <= n; id++ {
		if color[id] == white && dfs(id) {
			return cycle
		}
	}
	return nil
}

func closeCycle(stack []int, v int) []int {
	start := len(stack) - 1
	for stack[start] != v {
		start--
	}
	cycle := make([]int, 0, len(stack)-start+1)
	cycle = append(cycle, stack[start:]...)
	return append(cycle, v)
}
