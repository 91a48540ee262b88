// Package cpm computes project schedules with the Critical Path Method.
//
// # Overview
//
// A project is a directed acyclic graph of work. Given the duration of every
// piece of work, the engine answers three questions: how long the whole
// project takes, how far each piece of work can slip without delaying it,
// and which pieces have no room to slip at all (the critical path).
//
// Two encodings are supported:
//
//   - [AON] (activity on node): tasks are nodes and carry durations; edges
//     are precedence constraints. Each task gets ES, EF, LS, LF and slack.
//   - [AOA] (activity on arc): nodes are events and each edge is an activity
//     with a duration. Each event gets earliest (ve) and latest (vl) times,
//     and each activity gets its slack.
//
// [Matrix] is the MPM adjacency-matrix form of an AOA project. It is turned
// into an activity list before anything else happens.
//
// # Usage
//
//	res, err := cpm.Compute(cpm.AON{
//	    Size:      3,
//	    Durations: []float64{2, 3, 1},
//	    Dependencies: []cpm.Dependency{{From: 1, To: 2}, {From: 2, To: 3}},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Duration, res.CriticalPath) // 6 [1 2 3]
//
// [Prepare] separates validation from computation: the returned [Plan] is
// known to be acyclic and can be scheduled repeatedly with [Plan.Schedule].
//
// # Passes
//
// The forward pass walks the nodes in topological order and pushes earliest
// times along every edge. The backward pass seeds every node without a
// successor with the project duration and walks the same order in reverse,
// pulling latest times back along every edge. A node that is still unset
// after the sweep is treated as a terminal of its own.
//
// Slack values closer to zero than [Epsilon] are reported as exactly zero.
//
// # Errors
//
// Every failure carries a code from the errors package: shape errors such as
// INVALID_SIZE and OUT_OF_RANGE_REFERENCE are reported before a graph is
// built, and CYCLE_DETECTED is reported with the offending cycle before any
// time is computed.
//
// # Concurrency
//
// Calls share no state. A [Plan] and a [Result] are safe for concurrent
// reads. [ComputeAll] schedules many projects in parallel.
package cpm
