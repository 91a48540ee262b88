// Package pipeline provides the load → schedule → render pipeline for critpath.
//
// This package implements the complete pipeline that is used by the CLI and
// the HTTP API. By centralizing this logic, both entry points report the same
// warnings, log the same events, and render the same artifacts.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a project file (JSON, YAML, TOML, or HCL)
//  2. Schedule: Validate the project and run the critical path computation
//  3. Render: Generate output in various formats (JSON, CSV, DOT, SVG, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
// Rendered SVG, PNG, and PDF artifacts are cached by DOT source, so
// re-rendering an unchanged schedule skips Graphviz.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "release.yaml",
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	project, err := runner.Load(ctx, "release.yaml")
//	sched, err := runner.Schedule(ctx, project, "release")
//	artifacts, err := runner.Render(ctx, sched, opts)
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/critpath/pkg/cpm"
	"github.com/matzehuels/critpath/pkg/dag"
	cpio "github.com/matzehuels/critpath/pkg/io"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatCSV:  true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// DefaultPNGScale is the resolution multiplier for PNG output.
const DefaultPNGScale = 2.0

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Path is the project file to load. Ignored when Project is set.
	Path string

	// Project is an already decoded project, as received by the HTTP API.
	Project *cpio.Project

	// Formats lists the artifacts to render. Empty means no rendering.
	Formats []string

	// Detailed includes all four times in diagram labels.
	Detailed bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// Validate checks that a source is given and all formats are known.
func (o *Options) Validate() error {
	if o.Path == "" && o.Project == nil {
		return fmt.Errorf("path or project is required")
	}
	return ValidateFormats(o.Formats)
}

// Schedule is a computed project: the engine result together with what the
// pipeline learned about the graph while computing it.
type Schedule struct {
	// Name is the project name, or the file name when the project is unnamed.
	Name string

	// Result is the engine output.
	Result *cpm.Result

	// Redundant lists AON dependencies implied by a longer path. They never
	// change the schedule and are reported as warnings.
	Redundant []dag.Edge

	// Levels groups node ids by dependency depth, for diagram layout.
	Levels [][]int
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Schedule

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Mode         cpm.Mode
	NodeCount    int
	EdgeCount    int
	CacheHits    int // rendered formats served from the cache
	LoadTime     time.Duration
	ScheduleTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, csv, dot, svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}
