package registry

import (
	"sync"
	"sync/atomic"
)

var (
	// defaultRegistry holds the process-wide registry, built on first use.
	defaultRegistry atomic.Pointer[Registry]
	defaultMu       sync.Mutex
)

// Default returns the process-wide registry, creating it on first use.
// It is never torn down.
func Default() *Registry {
	if r := defaultRegistry.Load(); r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	if r := defaultRegistry.Load(); r != nil {
		return r
	}

	r := New()
	defaultRegistry.Store(r)
	return r
}

// SetDefault replaces the process-wide registry. This is similar to
// slog.SetDefault. Passing nil discards the current default; the next call
// to Default builds a fresh one.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry.Store(r)
}
