package observability

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/matzehuels/critpath/pkg/errors"
)

// Counters is a hook implementation that counts pipeline and HTTP events.
// It is safe for concurrent use.
type Counters struct {
	started time.Time

	schedules      atomic.Int64
	scheduleErrors atomic.Int64
	cycles         atomic.Int64
	criticalNodes  atomic.Int64
	renders        atomic.Int64
	renderErrors   atomic.Int64
	cacheHits      atomic.Int64
	cacheMisses    atomic.Int64
	requests       atomic.Int64
	requestErrors  atomic.Int64
}

// NewCounters creates zeroed counters.
func NewCounters() *Counters {
	return &Counters{started: time.Now()}
}

// CounterSnapshot is a point-in-time copy of [Counters].
type CounterSnapshot struct {
	Since          time.Time `json:"since"`
	Schedules      int64     `json:"schedules"`
	ScheduleErrors int64     `json:"schedule_errors"`
	Cycles         int64     `json:"cycles"`
	CriticalNodes  int64     `json:"critical_nodes"`
	Renders        int64     `json:"renders"`
	RenderErrors   int64     `json:"render_errors"`
	CacheHits      int64     `json:"cache_hits"`
	CacheMisses    int64     `json:"cache_misses"`
	Requests       int64     `json:"requests"`
	RequestErrors  int64     `json:"request_errors"`
}

// Snapshot returns the current values.
func (c *Counters) Snapshot() CounterSnapshot {
	return CounterSnapshot{
		Since:          c.started,
		Schedules:      c.schedules.Load(),
		ScheduleErrors: c.scheduleErrors.Load(),
		Cycles:         c.cycles.Load(),
		CriticalNodes:  c.criticalNodes.Load(),
		Renders:        c.renders.Load(),
		RenderErrors:   c.renderErrors.Load(),
		CacheHits:      c.cacheHits.Load(),
		CacheMisses:    c.cacheMisses.Load(),
		Requests:       c.requests.Load(),
		RequestErrors:  c.requestErrors.Load(),
	}
}

func (c *Counters) OnLoadStart(context.Context, string)                          {}
func (c *Counters) OnLoadComplete(context.Context, string, time.Duration, error) {}
func (c *Counters) OnScheduleStart(context.Context, string, string, int)         {}

func (c *Counters) OnScheduleComplete(_ context.Context, _ string, criticalCount int, _ time.Duration, err error) {
	if err != nil {
		c.scheduleErrors.Add(1)
		if errors.Is(err, errors.ErrCodeCycleDetected) {
			c.cycles.Add(1)
		}
		return
	}
	c.schedules.Add(1)
	c.criticalNodes.Add(int64(criticalCount))
}

func (c *Counters) OnRenderStart(context.Context, string) {}

func (c *Counters) OnRenderComplete(_ context.Context, _ string, _ time.Duration, err error) {
	if err != nil {
		c.renderErrors.Add(1)
		return
	}
	c.renders.Add(1)
}

func (c *Counters) OnCacheLookup(_ context.Context, _ string, hit bool) {
	if hit {
		c.cacheHits.Add(1)
	} else {
		c.cacheMisses.Add(1)
	}
}

func (c *Counters) OnRequest(context.Context, string, string) { c.requests.Add(1) }

func (c *Counters) OnResponse(context.Context, string, string, int, time.Duration) {}

func (c *Counters) OnError(context.Context, string, string, string) { c.requestErrors.Add(1) }

var (
	_ PipelineHooks = (*Counters)(nil)
	_ HTTPHooks     = (*Counters)(nil)
)
