// Package transform provides graph analyses that run before or alongside
// scheduling.
//
// # Cycle Detection
//
// [HasCycle] decides whether a dependency graph is acyclic using a
// three-color depth-first search. It is the gate in front of every schedule
// computation: the forward and backward passes assume a DAG and produce
// meaningless times on cyclic input. [FindCycle] runs the same search and
// returns the offending cycle so that error messages can name it.
//
// # Levels
//
// [AssignLevels] and [Levels] place every node one level below its deepest
// predecessor. Levels count hops rather than time and are used to rank nodes
// in node-link diagrams.
//
// # Redundant Dependencies
//
// [RedundantEdges] reports edges implied by a longer path (A→B, B→C, A→C
// makes A→C redundant). They never change an activity-on-node schedule, so
// the CLI reports them as warnings instead of removing them.
package transform
