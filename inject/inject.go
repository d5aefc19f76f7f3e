package inject

import (
	"fmt"
	"sync"

	"github.com/junioryono/locator/registry"
)

// LocateError is the panic value raised when a helper cannot resolve its
// service.
type LocateError struct {
	Helper string
	Key    registry.Key
	Err    error
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("inject: %s could not locate %s", e.Helper, e.Key)
}

func (e *LocateError) Unwrap() error {
	return e.Err
}

func orDefault(r *registry.Registry) *registry.Registry {
	if r == nil {
		return registry.Default()
	}
	return r
}

func mustResolve[T any](r *registry.Registry, helper string) T {
	v, err := registry.Resolve[T](r)
	if err != nil {
		panic(&LocateError{Helper: helper, Key: registry.KeyOf[T](), Err: err})
	}
	return v
}

// Inject holds a service resolved when the helper was created.
type Inject[T any] struct {
	value T
}

// New resolves T immediately. It panics if T is not registered.
func New[T any](r *registry.Registry) Inject[T] {
	return Inject[T]{value: mustResolve[T](orDefault(r), "Inject")}
}

// Value returns the injected service.
func (i Inject[T]) Value() T {
	return i.value
}

// Lazy resolves its service on first access.
// It is safe for concurrent use.
type Lazy[T any] struct {
	registry *registry.Registry

	mu    sync.Mutex
	done  bool
	value T
}

// NewLazy returns a helper that resolves T on the first call to Value.
func NewLazy[T any](r *registry.Registry) *Lazy[T] {
	return &Lazy[T]{registry: orDefault(r)}
}

// Value resolves T on first use and returns the same value afterwards.
// It panics if T is not registered; a failed access is retried by the
// next call.
func (l *Lazy[T]) Value() T {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.done {
		l.value = mustResolve[T](l.registry, "Lazy")
		l.done = true
	}
	return l.value
}
