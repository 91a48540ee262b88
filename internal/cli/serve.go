package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/critpath/internal/server"
	"github.com/matzehuels/critpath/pkg/observability"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduling HTTP API",
		Long: `Run the scheduling HTTP API.

Endpoints:
  GET  /api/v1/health
  GET  /api/v1/stats          schedule, render, cache, and request counters
  POST /api/v1/schedule       project JSON in, schedule JSON out
  POST /api/v1/schedule/dot   project JSON in, Graphviz source out

Settings are read from the [server] table of the config file; --addr
overrides the listen address. Set server.cache_dir to cache rendered
diagrams between requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if !cmd.Flags().Changed("verbose") {
				level, err := log.ParseLevel(cfg.Server.LogLevel)
				if err != nil {
					return err
				}
				c.SetLogLevel(level)
			}
			counters := observability.NewCounters()
			observability.SetPipelineHooks(counters)
			observability.SetHTTPHooks(counters)

			srv, err := server.New(cfg.Server, c.Logger, server.WithCounters(counters))
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
