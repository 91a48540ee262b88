package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/critpath/pkg/cpm"
	"github.com/matzehuels/critpath/pkg/render"
)

// Options configures schedule diagram rendering.
type Options struct {
	// Detailed includes all four times (ES/EF/LS/LF, or ve/vl) in node labels.
	// When false, labels show the id, the label and the slack only.
	Detailed bool

	// Title is drawn above the diagram when non-empty.
	Title string

	// Ranks groups node ids that are drawn side by side. When nil,
	// activity-on-node tasks are grouped by wave and events are left to
	// Graphviz.
	Ranks [][]int
}

const (
	criticalColor = "#d62728"
	normalColor   = "#444444"
)

// ToDOT converts a schedule result to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Critical tasks, events, dependencies, and activities are drawn in red with
// a bold outline. Activity-on-node tasks that share an earliest start are
// placed in the same rank.
func ToDOT(res *cpm.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if res.Mode == cpm.ModeAOA {
		buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	} else {
		buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	}
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	if res.Mode == cpm.ModeAOA {
		writeAOA(&buf, res, opts)
	} else {
		writeAON(&buf, res, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeAON(buf *bytes.Buffer, res *cpm.Result, opts Options) {
	for _, t := range res.Tasks {
		fmt.Fprintf(buf, "  %q [%s];\n", strconv.Itoa(t.ID), strings.Join(taskAttrs(t, opts.Detailed), ", "))
	}

	ranks := opts.Ranks
	if ranks == nil {
		for _, w := range res.Waves {
			ranks = append(ranks, w.TaskIDs)
		}
	}
	writeRanks(buf, ranks)

	critical := make(map[cpm.Dependency]bool, len(res.CriticalEdges))
	for _, d := range res.CriticalEdges {
		critical[d] = true
	}

	buf.WriteString("\n")
	for _, d := range res.Dependencies {
		attrs := edgeAttrs(critical[d])
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", strconv.Itoa(d.From), strconv.Itoa(d.To), strings.Join(attrs, ", "))
	}
}

func writeAOA(buf *bytes.Buffer, res *cpm.Result, opts Options) {
	for _, e := range res.Events {
		fmt.Fprintf(buf, "  %q [%s];\n", strconv.Itoa(e.ID), strings.Join(eventAttrs(e, opts.Detailed), ", "))
	}
	writeRanks(buf, opts.Ranks)

	buf.WriteString("\n")
	for _, a := range res.Activities {
		label := fmtNum(a.Duration)
		if opts.Detailed && !a.Critical {
			label += fmt.Sprintf(" (slack %s)", fmtNum(a.Slack))
		}
		attrs := append([]string{fmt.Sprintf("label=%q", label)}, edgeAttrs(a.Critical)...)
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", strconv.Itoa(a.From), strconv.Itoa(a.To), strings.Join(attrs, ", "))
	}
}

func writeRanks(buf *bytes.Buffer, ranks [][]int) {
	buf.WriteString("\n")
	for _, rank := range ranks {
		if len(rank) < 2 {
			continue
		}
		ids := make([]string, len(rank))
		for i, id := range rank {
			ids[i] = strconv.Quote(strconv.Itoa(id))
		}
		fmt.Fprintf(buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
	}
}

func taskAttrs(t cpm.TaskTiming, detailed bool) []string {
	head := strconv.Itoa(t.ID)
	if t.Label != "" {
		head += " " + t.Label
	}
	parts := []string{head, "d=" + fmtNum(t.Duration)}
	if detailed {
		parts = append(parts,
			fmt.Sprintf("ES %s  EF %s", fmtNum(t.ES), fmtNum(t.EF)),
			fmt.Sprintf("LS %s  LF %s", fmtNum(t.LS), fmtNum(t.LF)))
	}
	parts = append(parts, "slack "+fmtNum(t.Slack))
	return nodeAttrs(strings.Join(parts, "\n"), t.Critical)
}

func eventAttrs(e cpm.EventTiming, detailed bool) []string {
	parts := []string{strconv.Itoa(e.ID)}
	if e.Label != "" {
		parts[0] += " " + e.Label
	}
	if detailed {
		parts = append(parts, fmtNum(e.Earliest)+" | "+fmtNum(e.Latest))
	}
	return nodeAttrs(strings.Join(parts, "\n"), e.Critical)
}

func nodeAttrs(label string, critical bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if critical {
		attrs = append(attrs,
			fmt.Sprintf("color=%q", criticalColor),
			fmt.Sprintf("fontcolor=%q", criticalColor),
			"penwidth=2.5")
	} else {
		attrs = append(attrs, fmt.Sprintf("color=%q", normalColor))
	}
	return attrs
}

func edgeAttrs(critical bool) []string {
	if critical {
		return []string{fmt.Sprintf("color=%q", criticalColor), fmt.Sprintf("fontcolor=%q", criticalColor), "penwidth=2.5", "style=bold"}
	}
	return []string{fmt.Sprintf("color=%q", normalColor)}
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based root element with one whose
// width and height match the viewBox, so the SVG scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
