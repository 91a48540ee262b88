package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/critpath/pkg/cache"
	"github.com/matzehuels/critpath/pkg/cpm"
	cpio "github.com/matzehuels/critpath/pkg/io"
	"github.com/matzehuels/critpath/pkg/observability"
	"github.com/matzehuels/critpath/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
func (r *Runner) Render(ctx context.Context, s *Schedule, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.render(ctx, s, opts, r.logger(opts))
	return artifacts, err
}

// render generates the artifacts and reports how many came from the cache.
func (r *Runner) render(ctx context.Context, s *Schedule, opts Options, logger *log.Logger) (map[string][]byte, int, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, 0, err
	}

	var dot string
	hits := 0
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		hooks := observability.Pipeline()
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		if dot == "" && needsDOT(format) {
			dot = DOT(s, opts.Detailed)
		}
		data, hit, err := r.renderCached(ctx, s, format, dot, logger)
		hooks.OnRenderComplete(ctx, format, time.Since(start), err)
		if err != nil {
			return nil, 0, fmt.Errorf("render %s: %w", format, err)
		}
		if hit {
			hits++
		}
		artifacts[format] = data
	}
	return artifacts, hits, nil
}

// renderCached serves Graphviz-rendered formats from the cache and stores
// fresh renders. A failing cache only costs a re-render.
func (r *Runner) renderCached(ctx context.Context, s *Schedule, format, dot string, logger *log.Logger) ([]byte, bool, error) {
	if !isRendered(format) {
		data, err := renderFormat(ctx, s, format, dot)
		return data, false, err
	}

	key := cache.ArtifactKey(dot, format, scaleFor(format))
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("artifact cache read failed", "format", format, "error", err)
	}
	observability.Pipeline().OnCacheLookup(ctx, format, ok)
	if ok {
		logger.Debug("artifact cache hit", "project", s.Name, "format", format)
		return data, true, nil
	}

	data, err = renderFormat(ctx, s, format, dot)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data); err != nil {
		logger.Warn("artifact cache write failed", "format", format, "error", err)
	}
	return data, false, nil
}

// DOT returns the Graphviz source for a schedule's node-link diagram.
func DOT(s *Schedule, detailed bool) string {
	opts := nodelink.Options{Detailed: detailed, Title: s.Name}
	if s.Result.Mode == cpm.ModeAOA {
		opts.Ranks = s.Levels
	}
	return nodelink.ToDOT(s.Result, opts)
}

func needsDOT(format string) bool {
	return format == FormatDOT || isRendered(format)
}

// isRendered reports whether format is produced by Graphviz.
func isRendered(format string) bool {
	switch format {
	case FormatSVG, FormatPNG, FormatPDF:
		return true
	}
	return false
}

func scaleFor(format string) float64 {
	if format == FormatPNG {
		return DefaultPNGScale
	}
	return 0
}

func renderFormat(ctx context.Context, s *Schedule, format, dot string) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		err := cpio.WriteJSON(s.Result, &buf)
		return buf.Bytes(), err
	case FormatCSV:
		var buf bytes.Buffer
		err := cpio.WriteCSV(s.Result, &buf)
		return buf.Bytes(), err
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, DefaultPNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
