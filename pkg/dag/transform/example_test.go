package transform_test

import (
	"fmt"

	"github.com/matzehuels/critpath/pkg/dag"
	"github.com/matzehuels/critpath/pkg/dag/transform"
)

func ExampleFindCycle() {
	// design -> build -> test -> design
	g, _ := dag.New(3)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 3, 0)
	_ = g.AddEdge(3, 1, 0)

	fmt.Println("Cyclic:", transform.HasCycle(g))
	fmt.Println("Cycle:", transform.FindCycle(g))
	// Output:
	// Cyclic: true
	// Cycle: [1 2 3 1]
}

func ExampleLevels() {
	//   1
	//  / \
	// 2   3
	//  \ /
	//   4
	g, _ := dag.New(4)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(1, 3, 0)
	_ = g.AddEdge(2, 4, 0)
	_ = g.AddEdge(3, 4, 0)

	for i, level := range transform.Levels(g) {
		fmt.Printf("Level %d: %v\n", i, level)
	}
	// Output:
	// Level 0: [1]
	// Level 1: [2 3]
	// Level 2: [4]
}

func ExampleRedundantEdges() {
	// 1 -> 2 -> 3 plus the shortcut 1 -> 3
	g, _ := dag.New(3)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 3, 0)
	_ = g.AddEdge(1, 3, 0)

	for _, e := range transform.RedundantEdges(g) {
		fmt.Printf("%d -> %d is implied\n", e.From, e.To)
	}
	// Output:
	// 1 -> 3 is implied
}
