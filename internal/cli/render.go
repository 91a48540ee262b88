package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cperrors "github.com/matzehuels/critpath/pkg/errors"
	"github.com/matzehuels/critpath/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path (multiple); "-" for stdout
	formats  []string // dot, svg, png, pdf
	detailed bool     // show all four times in node labels
	noCache  bool     // render even when a cached artifact exists
}

// diagramFormats is the set of formats the render command produces.
var diagramFormats = map[string]bool{
	pipeline.FormatDOT: true,
	pipeline.FormatSVG: true,
	pipeline.FormatPNG: true,
	pipeline.FormatPDF: true,
}

// renderCommand creates the render command for drawing schedule diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [project]",
		Short: "Draw a project schedule as a Graphviz diagram",
		Long: `Draw a project schedule as a node-link diagram.

Critical tasks, events, and activities are drawn in red. Activity-on-node
tasks that can start together share a column. SVG, PNG, and PDF output is
produced with Graphviz; PNG and PDF additionally need rsvg-convert.

Rendered diagrams are cached under $XDG_CACHE_HOME/critpath (or
~/.cache/critpath) and reused while the schedule is unchanged.`,
		Args:              inputArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: completeProjectFiles(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, pipeline.FormatSVG)
			if err := validateDiagramFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple), - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show earliest and latest times in every node")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered artifact cache")

	completeFormats(cmd, pipeline.FormatSVG, pipeline.FormatDOT, pipeline.FormatPNG, pipeline.FormatPDF)

	return cmd
}

// validateDiagramFormats checks that all requested formats are diagrams.
func validateDiagramFormats(formats []string) error {
	for _, f := range formats {
		if !diagramFormats[f] {
			return cperrors.New(cperrors.ErrCodeInvalidFormat, "invalid format: %s (must be 'dot', 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if diagramFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// runRender schedules the project and writes one file per format.
func (c *CLI) runRender(ctx context.Context, stdout, stderr io.Writer, input string, opts renderOpts) error {
	if opts.output == "-" && len(opts.formats) > 1 {
		return cperrors.New(cperrors.ErrCodeInvalidInput, "stdout output needs a single format, got %d", len(opts.formats))
	}

	spinner := newSpinnerWithContext(ctx, stderr, fmt.Sprintf("Rendering %s as %s", filepath.Base(input), strings.Join(opts.formats, ", ")))
	spinner.Start()

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	res, err := runner.Execute(ctx, pipeline.Options{
		Path:     input,
		Formats:  opts.formats,
		Detailed: opts.detailed,
		Logger:   projectLogger(c.Logger, input),
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}

	if opts.output == "-" {
		_, err := stdout.Write(res.Artifacts[opts.formats[0]])
		return err
	}

	paths := outputPaths(opts.output, input, opts.formats)
	for _, f := range opts.formats {
		if err := os.WriteFile(paths[f], res.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", paths[f], err)
		}
	}

	if res.Stats.CacheHits > 0 {
		printSuccess(stdout, "Rendered %s (%d cached)", res.Name, res.Stats.CacheHits)
	} else {
		printSuccess(stdout, "Rendered %s", res.Name)
	}
	for _, f := range opts.formats {
		printFile(stdout, paths[f], int64(len(res.Artifacts[f])))
	}
	fmt.Fprintln(stdout)
	printNextStep(stdout, "Browse", appName+" view "+input)
	return nil
}
