// Package observability provides hooks for instrumenting document builds.
//
// The package uses a simple hooks pattern: a hook interface with a no-op
// default implementation and a registry populated at startup. Libraries call
// the hooks to emit events; binaries decide whether anything listens. This
// keeps the render path free of hard dependencies on any metrics backend.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from the document build pipeline.
type RenderHooks interface {
	// OnDocumentStart fires once per build, after discovery.
	OnDocumentStart(ctx context.Context, fileCount int)

	// OnFileStart fires before a file is rendered.
	OnFileStart(ctx context.Context, path string)

	// OnFileComplete fires after a file's page(s) are assembled.
	// err is the per-file error, nil on success; a non-nil err means the
	// document contains an error page for this file.
	OnFileComplete(ctx context.Context, path, language string, lines int, duration time.Duration, err error)

	// OnDocumentComplete fires after the document is written (or failed to).
	OnDocumentComplete(ctx context.Context, output string, pages int, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnDocumentStart(context.Context, int) {}
func (NoopRenderHooks) OnFileStart(context.Context, string)  {}
func (NoopRenderHooks) OnFileComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopRenderHooks) OnDocumentComplete(context.Context, string, int, time.Duration, error) {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any builds.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
