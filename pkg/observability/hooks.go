// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about engine operations and API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Callers emit events around engine operations:
//
//	observability.Layout().OnMoveStart(ctx, id, itemCount)
//	// ... resolve the move ...
//	observability.Layout().OnMoveComplete(ctx, id, duration, rejected)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout arbitration operations.
type LayoutHooks interface {
	// Move events. rejected reports a preventCollision rollback.
	OnMoveStart(ctx context.Context, itemID string, itemCount int)
	OnMoveComplete(ctx context.Context, itemID string, duration time.Duration, rejected bool)

	// Compaction events.
	OnCompactStart(ctx context.Context, itemCount int)
	OnCompactComplete(ctx context.Context, duration time.Duration)

	// Drop resolution events. pos is the classified intent ("center",
	// "left", ...), empty when no valid placement existed.
	OnDropResolved(ctx context.Context, itemID, pos string, duration time.Duration)
}

// NoopLayoutHooks is a LayoutHooks implementation that does nothing.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnMoveStart(context.Context, string, int)                      {}
func (NoopLayoutHooks) OnMoveComplete(context.Context, string, time.Duration, bool)   {}
func (NoopLayoutHooks) OnCompactStart(context.Context, int)                           {}
func (NoopLayoutHooks) OnCompactComplete(context.Context, time.Duration)              {}
func (NoopLayoutHooks) OnDropResolved(context.Context, string, string, time.Duration) {}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP arbitration API.
type ServerHooks interface {
	// OnRequest records a completed API request.
	OnRequest(ctx context.Context, route string, status int, duration time.Duration)
}

// NoopServerHooks is a ServerHooks implementation that does nothing.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, int, time.Duration) {}

// =============================================================================
// Registration
// =============================================================================

var (
	mu          sync.RWMutex
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
)

// SetLayoutHooks registers the layout hooks. Call once at startup, before
// any engine operation runs; registration is safe for concurrent use but
// late registration can miss events.
func SetLayoutHooks(h LayoutHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopLayoutHooks{}
	}
	layoutHooks = h
}

// SetServerHooks registers the server hooks.
func SetServerHooks(h ServerHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopServerHooks{}
	}
	serverHooks = h
}

// Layout returns the registered layout hooks, never nil.
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Server returns the registered server hooks, never nil.
func Server() ServerHooks {
	mu.RLock()
	defer mu.RUnlock()
	return serverHooks
}
