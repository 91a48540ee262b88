// Package dag provides the dependency graph that feeds the scheduling engine.
//
// # Overview
//
// Both project encodings reduce to the same shape: nodes numbered densely
// 1..n and a list of directed edges between them. In activity-on-node (AON)
// projects a node is a task and edges carry no weight; in activity-on-arc
// (AOA) projects a node is an event and each edge weight is the duration of
// the activity it represents.
//
// # Basic Usage
//
// Create a graph with [New], add edges with [Graph.AddEdge], then walk it
// with [Graph.Out], [Graph.In], or the id-based [Graph.Successors] and
// [Graph.Predecessors]:
//
//	g, _ := dag.New(3)
//	_ = g.AddEdge(1, 2, 0)
//	_ = g.AddEdge(2, 3, 0)
//	order := g.TopoOrder() // [1 2 3]
//
// # Acyclicity
//
// [Graph] does not enforce acyclicity on insert. Cycle detection lives in the
// [transform] subpackage and must run before any computation that assumes a
// DAG. [Graph.TopoOrder] returns a short order on cyclic input rather than
// looping.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Once built, a Graph
// is only read, so concurrent schedule computations may share it.
//
// [transform]: github.com/matzehuels/critpath/pkg/dag/transform
package dag
