package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	cperrors "github.com/matzehuels/critpath/pkg/errors"
	cpio "github.com/matzehuels/critpath/pkg/io"
	"github.com/matzehuels/critpath/pkg/pipeline"
)

// formatTable prints schedules as terminal tables.
const formatTable = "table"

// scheduleOpts holds the command-line flags for the schedule command.
type scheduleOpts struct {
	format string // table, json, csv
	output string // file to write a single schedule to
	jobs   int    // projects scheduled concurrently
}

// scheduleCommand creates the schedule command.
func (c *CLI) scheduleCommand() *cobra.Command {
	opts := scheduleOpts{format: formatTable, jobs: 4}

	cmd := &cobra.Command{
		Use:   "schedule [project...]",
		Short: "Compute the critical path schedule of one or more projects",
		Long: `Compute the critical path schedule of one or more project files.

Project files may be JSON, YAML, TOML, or HCL and declare one of three modes:
aon (tasks with durations and dependencies), aoa (events joined by
activities), or mpm (an adjacency matrix of activity durations).

Several projects are scheduled concurrently (see --jobs). With --output, the
single schedule is written to a file whose format follows its extension
(.json or .csv).`,
		Args:              inputArgs(cobra.MinimumNArgs(1)),
		ValidArgsFunction: completeProjectFiles(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				opts.format = cfg.Schedule.Format
			}
			if !cmd.Flags().Changed("jobs") {
				opts.jobs = cfg.Schedule.Jobs
			}
			return c.runSchedule(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table (default), json, csv")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the schedule to a .json or .csv file")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "projects scheduled concurrently (0 = unlimited)")

	completeFormats(cmd, formatTable, pipeline.FormatJSON, pipeline.FormatCSV)

	return cmd
}

// validateScheduleFormat checks that the schedule output format is known.
func validateScheduleFormat(format string) error {
	switch format {
	case formatTable, pipeline.FormatJSON, pipeline.FormatCSV:
		return nil
	}
	return cperrors.New(cperrors.ErrCodeInvalidFormat, "invalid format: %s (must be 'table', 'json', or 'csv')", format)
}

// runSchedule schedules every input and prints or writes the results in
// input order.
func (c *CLI) runSchedule(ctx context.Context, w io.Writer, inputs []string, opts scheduleOpts) error {
	if err := validateScheduleFormat(opts.format); err != nil {
		return err
	}
	if opts.output != "" && len(inputs) > 1 {
		return cperrors.New(cperrors.ErrCodeInvalidInput, "--output needs a single project, got %d", len(inputs))
	}

	var formats []string
	if opts.format != formatTable && opts.output == "" {
		formats = []string{opts.format}
	}
	runs := make([]pipeline.Options, len(inputs))
	for i, in := range inputs {
		runs[i] = pipeline.Options{Path: in, Formats: formats, Logger: projectLogger(c.Logger, in)}
	}

	prog := newProgress(c.Logger)
	results, err := c.newRunner(true).ExecuteAll(ctx, runs, opts.jobs)
	if err != nil {
		return err
	}
	prog.done("scheduled projects", "count", len(results), "jobs", opts.jobs)

	if opts.output != "" {
		if err := cpio.ExportResult(results[0].Result, opts.output); err != nil {
			return fmt.Errorf("write output %s: %w", opts.output, err)
		}
		size := int64(-1)
		if fi, err := os.Stat(opts.output); err == nil {
			size = fi.Size()
		}
		printSuccess(w, "Schedule complete")
		printFile(w, opts.output, size)
		return nil
	}

	for i, res := range results {
		if opts.format == formatTable {
			if i > 0 {
				fmt.Fprintln(w)
			}
			printSchedule(w, &res.Schedule)
			continue
		}
		if _, err := w.Write(res.Artifacts[opts.format]); err != nil {
			return err
		}
	}
	return nil
}
