// Package observability provides hooks for metrics, tracing, and logging.
//
// The scheduling pipeline and the HTTP server report what they do through
// two hook interfaces. Nothing is recorded until main registers an
// implementation; the default hooks do nothing.
//
//	counters := observability.NewCounters()
//	observability.SetPipelineHooks(counters)
//	observability.SetHTTPHooks(counters)
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnScheduleStart(ctx, project, mode, size)
//	// ... compute ...
//	observability.Pipeline().OnScheduleComplete(ctx, project, criticalCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the scheduling pipeline.
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, duration time.Duration, err error)

	// OnScheduleStart fires after a project is decoded and before its graph is
	// validated. mode is aon, aoa, or mpm; size is the node or event count.
	OnScheduleStart(ctx context.Context, project, mode string, size int)
	OnScheduleComplete(ctx context.Context, project string, criticalCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)

	// OnCacheLookup fires for every rendered format looked up in the
	// artifact cache.
	OnCacheLookup(ctx context.Context, format string, hit bool)
}

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError fires once per failed request with the error code sent to the
	// client, such as CYCLE_DETECTED.
	OnError(ctx context.Context, method, path, code string)
}

// NoopPipelineHooks ignores every pipeline event. Embed it to implement
// only some of the methods.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                                   {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, time.Duration, error)          {}
func (NoopPipelineHooks) OnScheduleStart(context.Context, string, string, int)                  {}
func (NoopPipelineHooks) OnScheduleComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                                 {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error)        {}
func (NoopPipelineHooks) OnCacheLookup(context.Context, string, bool)                           {}

// NoopHTTPHooks ignores every HTTP event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string)                {}

var (
	hooksMu       sync.RWMutex
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
)

// SetPipelineHooks registers pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = h
}

// SetHTTPHooks registers HTTP hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	defer hooksMu.Unlock()
	httpHooks = h
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op hooks. Tests call it after registering their own.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	httpHooks = NoopHTTPHooks{}
}
