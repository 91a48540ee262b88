// Package nodelink renders schedules as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations of a computed
// schedule using Graphviz. Activity-on-node results are drawn as rounded
// boxes, one per task, with precedence arrows between them. Activity-on-arc
// results are drawn as event circles joined by activity arrows labelled with
// their durations.
//
// Critical tasks, events, dependencies, and activities are drawn in red with
// a heavier outline, so the critical path reads at a glance.
//
// # Usage
//
// Convert a result to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(res, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Layout
//
// Diagrams flow left to right (rankdir=LR), the direction time runs in.
// Tasks that share an earliest start (a wave) are pinned to the same rank.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
