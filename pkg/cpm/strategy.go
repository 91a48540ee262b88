package cpm

import (
	"math"

	"github.com/matzehuels/critpath/pkg/dag"
)

// times carries the per-node results of the two passes.
//
// For activity-on-node graphs early is ES and late is LF; EF and LS are
// derived from the task duration. For activity-on-arc graphs early is ve and
// late is vl. Slices are indexed 1..n.
type times struct {
	early    []float64
	late     []float64
	duration float64
}

// strategy is one scheduling encoding. Both implementations share the graph
// model and cycle detection; each has its own pass and classification bodies.
// Implementations are immutable after construction: every pass allocates
// fresh slices, so a strategy may be scheduled repeatedly and concurrently.
type strategy interface {
	mode() Mode
	graph() *dag.Graph
	forward(order []int) times
	backward(order []int, t *times)
	classify(t times) *Result
}

// seedLate returns a latest-time vector with every sink at the project
// duration and every other node at +Inf, ready for relaxation.
func seedLate(g *dag.Graph, duration float64) []float64 {
	late := make([]float64, g.Size()+1)
	for id := 1; id <= g.Size(); id++ {
		late[id] = math.Inf(1)
	}
	for _, id := range g.Sinks() {
		late[id] = duration
	}
	return late
}

// snap maps values within Epsilon of zero to exactly zero.
func snap(x float64) float64 {
	if math.Abs(x) < Epsilon {
		return 0
	}
	return x
}

func label(labels []string, id int) string {
	if id-1 < len(labels) {
		return labels[id-1]
	}
	return ""
}
