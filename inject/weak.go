package inject

import (
	"fmt"
	"weak"

	"github.com/junioryono/locator/registry"
)

// Weak holds a non-owning reference to a shared *T.
//
// The reference is invalid once the object has been collected or the
// registry stops holding that instance (after Unload or Unregister, or
// because the service is Unique and was never cached).
type Weak[T any] struct {
	registry *registry.Registry
	ptr      weak.Pointer[T]
}

// NewWeak resolves *T immediately and keeps a weak reference to it.
// It panics if *T is not registered.
func NewWeak[T any](r *registry.Registry) *Weak[T] {
	r = orDefault(r)
	return &Weak[T]{
		registry: r,
		ptr:      weak.Make(mustResolve[*T](r, "Weak")),
	}
}

// Value returns the referenced instance, or false if it is no longer valid.
func (w *Weak[T]) Value() (*T, bool) {
	return held(w.registry, w.ptr)
}

// Unowned is like Weak but treats access to an invalid reference as a
// programming error.
type Unowned[T any] struct {
	registry *registry.Registry
	ptr      weak.Pointer[T]
}

// NewUnowned resolves *T immediately and keeps a weak reference to it.
// It panics if *T is not registered.
func NewUnowned[T any](r *registry.Registry) *Unowned[T] {
	r = orDefault(r)
	return &Unowned[T]{
		registry: r,
		ptr:      weak.Make(mustResolve[*T](r, "Unowned")),
	}
}

// Value returns the referenced instance.
// It panics if the registry no longer holds it.
func (u *Unowned[T]) Value() *T {
	p, ok := held(u.registry, u.ptr)
	if !ok {
		panic(fmt.Sprintf("inject: Unowned %s accessed after release", registry.KeyOf[*T]()))
	}
	return p
}

func held[T any](r *registry.Registry, ptr weak.Pointer[T]) (*T, bool) {
	p := ptr.Value()
	if p == nil {
		return nil, false
	}

	current, ok := registry.Cached[*T](r)
	if !ok || current != p {
		return nil, false
	}
	return p, true
}
