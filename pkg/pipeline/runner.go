package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/critpath/pkg/cache"
	"github.com/matzehuels/critpath/pkg/cpm"
	"github.com/matzehuels/critpath/pkg/dag/transform"
	cpio "github.com/matzehuels/critpath/pkg/io"
	"github.com/matzehuels/critpath/pkg/observability"
)

// Runner executes pipeline stages with caching, logging, and observability
// hooks. Both CLI and API use it so that every entry point behaves the same.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. If c is nil, rendered artifacts are not
// cached. If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs the complete load → schedule → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)
	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	project, fallback := opts.Project, "project"
	if project == nil {
		loadStart := time.Now()
		p, err := r.Load(ctx, opts.Path)
		if err != nil {
			return nil, err
		}
		project = p
		fallback = strings.TrimSuffix(filepath.Base(opts.Path), filepath.Ext(opts.Path))
		result.Stats.LoadTime = time.Since(loadStart)
	}

	// Stage 2: Schedule
	scheduleStart := time.Now()
	sched, err := r.schedule(ctx, project, fallback, logger)
	if err != nil {
		return nil, err
	}
	result.Schedule = *sched
	result.Stats.ScheduleTime = time.Since(scheduleStart)
	result.Stats.Mode = sched.Result.Mode
	result.Stats.NodeCount = sched.Result.Size
	if sched.Result.Mode == cpm.ModeAOA {
		result.Stats.EdgeCount = len(sched.Result.Activities)
	} else {
		result.Stats.EdgeCount = len(sched.Result.Dependencies)
	}

	// Stage 3: Render
	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, cached, err := r.render(ctx, sched, opts, logger)
		if err != nil {
			return nil, err
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		result.Stats.CacheHits = cached

		logger.Info("rendered outputs",
			"formats", opts.Formats,
			"cached", cached,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// ExecuteAll runs Execute for every option set, at most jobs at a time
// (jobs <= 0 means no limit). Results are returned in input order. The first
// failure cancels the remaining runs.
func (r *Runner) ExecuteAll(ctx context.Context, opts []Options, jobs int) ([]*Result, error) {
	results := make([]*Result, len(opts))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, o := range opts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Execute(ctx, o)
			if err != nil {
				if o.Path != "" {
					return fmt.Errorf("%s: %w", o.Path, err)
				}
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Load reads and decodes the project file at path.
func (r *Runner) Load(ctx context.Context, path string) (*cpio.Project, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	p, err := cpio.ImportProject(path)
	hooks.OnLoadComplete(ctx, path, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("loaded project", "path", path, "mode", p.Mode, "size", p.Size)
	return p, nil
}

// Schedule validates the project and computes its schedule. fallback names
// the project in logs and output when the project itself is unnamed.
func (r *Runner) Schedule(ctx context.Context, p *cpio.Project, fallback string) (*Schedule, error) {
	return r.schedule(ctx, p, fallback, r.Logger)
}

func (r *Runner) schedule(ctx context.Context, p *cpio.Project, fallback string, logger *log.Logger) (*Schedule, error) {
	name := p.DisplayName(fallback)
	hooks := observability.Pipeline()
	hooks.OnScheduleStart(ctx, name, p.Mode, p.Size)
	start := time.Now()

	sched, err := r.compute(p, name)
	if err != nil {
		hooks.OnScheduleComplete(ctx, name, 0, time.Since(start), err)
		return nil, err
	}
	res := sched.Result
	hooks.OnScheduleComplete(ctx, name, res.CriticalCount(), time.Since(start), nil)

	for _, e := range sched.Redundant {
		logger.Warn("redundant dependency", "project", name, "from", e.From, "to", e.To)
	}
	logger.Info("scheduled project",
		"project", name,
		"mode", res.Mode,
		"nodes", res.Size,
		"duration", res.Duration,
		"critical", res.CriticalCount())

	return sched, nil
}

func (r *Runner) compute(p *cpio.Project, name string) (*Schedule, error) {
	in, err := p.Input()
	if err != nil {
		return nil, err
	}
	plan, err := cpm.Prepare(in)
	if err != nil {
		return nil, err
	}

	g := plan.Graph()
	sched := &Schedule{
		Name:   name,
		Result: plan.Schedule(),
		Levels: transform.Levels(g),
	}
	// In AOA graphs a parallel path does not make an activity redundant,
	// since the activity's own duration still counts.
	if plan.Mode() == cpm.ModeAON {
		sched.Redundant = transform.RedundantEdges(g)
	}
	return sched, nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
