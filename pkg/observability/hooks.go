// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; the defaults do
// nothing. A binary registers its own implementations once at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnPageStart(ctx, sheet, bottom, top)
//	// ... draw the page ...
//	observability.Pipeline().OnPageComplete(ctx, sheet, bottom, cached, duration, err)
//
// Hooks are registered by main rather than by libraries, so no library
// package depends on a metrics backend.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from a render run.
type PipelineHooks interface {
	// Load events bracket reading the input tables; beds is the bed file path.
	OnLoadStart(ctx context.Context, beds string)
	OnLoadComplete(ctx context.Context, beds string, records int, duration time.Duration, err error)

	// Page events fire once per page, covering all its formats.
	OnPageStart(ctx context.Context, sheet string, bottom, top float64)
	OnPageComplete(ctx context.Context, sheet string, bottom float64, cached bool, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is the key's kind
// ("page", "input"), never the full key.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnPageStart(context.Context, string, float64, float64) {}
func (NoopPipelineHooks) OnPageComplete(context.Context, string, float64, bool, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string) {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string) {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// The registry is swapped whole so readers never see a torn pair.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

func load() *registry { return current.Load() }

func update(f func(r *registry)) {
	for {
		old := current.Load()
		next := *old
		f(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks replaces the pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks replaces the cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

func Pipeline() PipelineHooks { return load().pipeline }

func Cache() CacheHooks { return load().cache }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&registry{pipeline: NoopPipelineHooks{}, cache: NoopCacheHooks{}})
}
