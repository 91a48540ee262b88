package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidSize is returned by [New] when the node count is zero or
	// negative. A schedule always has at least one task or event.
	ErrInvalidSize = errors.New("node count must be positive")

	// ErrNodeOutOfRange is returned by [Graph.AddEdge] when either endpoint
	// lies outside the dense id range 1..n.
	ErrNodeOutOfRange = errors.New("node id out of range")
)

// Edge is a directed dependency From -> To with an optional weight.
//
// For activity-on-arc graphs the weight is the activity duration. For
// activity-on-node graphs durations live on the nodes and the weight is
// left at zero.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is a directed graph over the dense node range 1..n.
//
// Edges are kept in insertion order and indexed by both endpoints, so
// forward and backward passes can walk successors and predecessors without
// scanning the full edge list. Index 0 of every per-node slice is unused.
//
// The zero value is not usable - use [New] to create a valid Graph.
// A Graph is not safe for concurrent mutation, but once built it may be read
// by any number of goroutines.
type Graph struct {
	n     int
	edges []Edge
	out   [][]int // node -> indices into edges
	in    [][]int // node -> indices into edges
}

// New creates an empty graph with nodes 1..n and no edges.
// Returns [ErrInvalidSize] if n < 1.
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	return &Graph{
		n:   n,
		out: make([][]int, n+1),
		in:  make([][]int, n+1),
	}, nil
}

// Size returns the number of nodes.
func (g *Graph) Size() int { return g.n }

// Contains reports whether id is a valid node of g.
func (g *Graph) Contains(id int) bool { return id >= 1 && id <= g.n }

// AddEdge adds a directed edge from -> to carrying weight.
// Returns [ErrNodeOutOfRange] if either endpoint is not in 1..n.
//
// Self loops and parallel edges are accepted; a self loop is a cycle and
// will be reported by cycle detection.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if !g.Contains(from) || !g.Contains(to) {
		return ErrNodeOutOfRange
	}
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)
	return nil
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Edge returns the edge at index i, as referenced by [Graph.Out] and [Graph.In].
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Out returns the indices of edges leaving id. The slice must not be modified.
func (g *Graph) Out(id int) []int { return g.out[id] }

// In returns the indices of edges entering id. The slice must not be modified.
func (g *Graph) In(id int) []int { return g.in[id] }

// Successors returns the targets of the edges leaving id, in insertion order.
// A target appears once per parallel edge.
func (g *Graph) Successors(id int) []int {
	succ := make([]int, len(g.out[id]))
	for i, e := range g.out[id] {
		succ[i] = g.edges[e].To
	}
	return succ
}

// Predecessors returns the sources of the edges entering id.
func (g *Graph) Predecessors(id int) []int {
	pred := make([]int, len(g.in[id]))
	for i, e := range g.in[id] {
		pred[i] = g.edges[e].From
	}
	return pred
}

// InDegree returns the number of edges entering id.
func (g *Graph) InDegree(id int) int { return len(g.in[id]) }

// OutDegree returns the number of edges leaving id.
func (g *Graph) OutDegree(id int) int { return len(g.out[id]) }

// InDegrees returns the in-degree vector indexed 1..n (index 0 unused).
// The returned slice is a fresh copy that callers may mutate.
func (g *Graph) InDegrees() []int {
	deg := make([]int, g.n+1)
	for id := 1; id <= g.n; id++ {
		deg[id] = len(g.in[id])
	}
	return deg
}

// OutDegrees returns the out-degree vector indexed 1..n (index 0 unused).
func (g *Graph) OutDegrees() []int {
	deg := make([]int, g.n+1)
	for id := 1; id <= g.n; id++ {
		deg[id] = len(g.out[id])
	}
	return deg
}

// Sources returns the nodes with no incoming edges, in ascending order.
func (g *Graph) Sources() []int {
	var sources []int
	for id := 1; id <= g.n; id++ {
		if len(g.in[id]) == 0 {
			sources = append(sources, id)
		}
	}
	return sources
}

// Sinks returns the nodes with no outgoing edges, in ascending order.
// An isolated node is both a source and a sink.
func (g *Graph) Sinks() []int {
	var sinks []int
	for id := 1; id <= g.n; id++ {
		if len(g.out[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	return sinks
}

// TopoOrder returns the nodes in a topological order using Kahn's algorithm.
//
// The queue is seeded with every zero in-degree node in ascending order and
// successors are enqueued as their remaining in-degree reaches zero. The
// graph itself is not modified; in-degrees are decremented on a local copy.
//
// If the graph contains a cycle, the nodes on or behind it never reach
// in-degree zero and the returned order is shorter than [Graph.Size].
func (g *Graph) TopoOrder() []int {
	deg := g.InDegrees()
	queue := make([]int, 0, g.n)
	for id := 1; id <= g.n; id++ {
		if deg[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]int, 0, g.n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		for _, e := range g.out[u] {
			v := g.edges[e].To
			deg[v]--
			if deg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	return order
}
