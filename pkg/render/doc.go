// Package render provides output format conversion for schedule diagrams.
//
// The [nodelink] subpackage turns a schedule into Graphviz DOT and SVG. The
// [ToPDF] and [ToPNG] functions in this package convert any SVG to other
// formats using the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// Use [Available] to check for rsvg-convert before offering PDF or PNG.
//
// [nodelink]: github.com/matzehuels/critpath/pkg/render/nodelink
package render
