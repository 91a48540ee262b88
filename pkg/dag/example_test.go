package dag_test

import (
	"fmt"

	"github.com/matzehuels/critpath/pkg/dag"
)

func ExampleGraph_basic() {
	// design -> build -> ship
	g, _ := dag.New(3)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 3, 0)

	fmt.Println("Nodes:", g.Size())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Order:", g.TopoOrder())
	// Output:
	// Nodes: 3
	// Edges: 2
	// Order: [1 2 3]
}

func ExampleGraph_traversal() {
	// Event 1 fans out to events 2 and 3 with weighted activities.
	g, _ := dag.New(3)
	_ = g.AddEdge(1, 2, 5)
	_ = g.AddEdge(1, 3, 3)

	fmt.Println("Successors of 1:", g.Successors(1))
	fmt.Println("Predecessors of 3:", g.Predecessors(3))
	fmt.Println("Out-degree of 1:", g.OutDegree(1))
	fmt.Println("Sinks:", g.Sinks())
	// Output:
	// Successors of 1: [2 3]
	// Predecessors of 3: [1]
	// Out-degree of 1: 2
	// Sinks: [2 3]
}
