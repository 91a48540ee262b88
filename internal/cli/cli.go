// Package cli implements the critpath command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/critpath/internal/config"
	"github.com/matzehuels/critpath/pkg/buildinfo"
	"github.com/matzehuels/critpath/pkg/cache"
	cperrors "github.com/matzehuels/critpath/pkg/errors"
	"github.com/matzehuels/critpath/pkg/pipeline"
)

const appName = "critpath"

// Log levels accepted by [New].
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Process exit codes returned by [ExitCode].
const (
	ExitOK         = 0
	ExitFailure    = 1 // I/O, rendering, anything unclassified
	ExitInput      = 2 // malformed or missing project, bad flags or arguments
	ExitStructural = 3 // cycle or other graph defect
	ExitCanceled   = 130
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

// New creates a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "critpath computes critical path schedules",
		Long: `critpath computes critical path method (CPM) schedules for projects given as
activity-on-node task lists, activity-on-arc event networks, or MPM matrices.

It reports earliest and latest times, slack, and the critical path, and draws
the schedule as a Graphviz diagram.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cperrors.Wrap(cperrors.ErrCodeInvalidInput, err, "%s", cmd.CommandPath())
	})
	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", config.DefaultPath, "config file (TOML)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.scheduleCommand(),
		c.renderCommand(),
		c.viewCommand(),
		c.serveCommand(),
		c.versionCommand(),
		c.completionCommand(),
	)
	return root
}

// ExitCode maps a command error to the process exit status, so scripts can
// tell a broken project file from a cyclic one.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	switch cperrors.KindOf(err) {
	case cperrors.KindInput, cperrors.KindNotFound:
		return ExitInput
	case cperrors.KindStructural:
		return ExitStructural
	}
	return ExitFailure
}

// inputArgs marks argument count errors as input errors for [ExitCode].
func inputArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return cperrors.Wrap(cperrors.ErrCodeInvalidInput, err, "%s", cmd.CommandPath())
		}
		return nil
	}
}

func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(noCache), c.Logger)
}

// newCache opens the per-user artifact cache. An unusable cache directory
// only disables caching.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		var fc *cache.FileCache
		if fc, err = cache.NewFileCache(dir, cache.DefaultTTL); err == nil {
			return fc
		}
	}
	c.Logger.Debug("artifact cache disabled", "error", err)
	return cache.NewNullCache()
}

// cacheDir follows the XDG layout: $XDG_CACHE_HOME/critpath, else
// ~/.cache/critpath.
func cacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// parseFormats splits a comma-separated --format value.
func parseFormats(s, fallback string) []string {
	if s == "" {
		return []string{fallback}
	}
	formats := strings.Split(s, ",")
	for i := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(formats[i]))
	}
	return formats
}
