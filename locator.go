package locator

import "github.com/junioryono/locator/registry"

// Scope aliases registry.Scope so callers of the package-level functions
// do not need to import registry.
type Scope = registry.Scope

const (
	SharedLazy  = registry.SharedLazy
	SharedEager = registry.SharedEager
	Unique      = registry.Unique
)

// ErrServiceNotFound is the sentinel wrapped by every failed Resolve.
var ErrServiceNotFound = registry.ErrServiceNotFound

// Default returns the process-wide registry used by the functions below.
func Default() *registry.Registry {
	return registry.Default()
}

// As makes a registration resolvable as I in addition to its own type.
func As[I any]() registry.RegisterOption {
	return registry.As[I]()
}

// Register adds factory to the default registry.
func Register[T any](scope Scope, factory func() T, opts ...registry.RegisterOption) {
	registry.Register(registry.Default(), scope, factory, opts...)
}

// Resolve returns an instance of T from the default registry.
func Resolve[T any]() (T, error) {
	return registry.Resolve[T](registry.Default())
}

// MustResolve resolves T from the default registry and panics if it is
// not registered.
func MustResolve[T any]() T {
	return registry.MustResolve[T](registry.Default())
}

// TryResolve resolves T from the default registry and reports whether it
// was found.
func TryResolve[T any]() (T, bool) {
	return registry.TryResolve[T](registry.Default())
}

// Unregister removes T from every scope of the default registry.
func Unregister[T any]() {
	registry.Unregister[T](registry.Default())
}

// Unload drops the cached instances of T held by the default registry.
func Unload[T any]() {
	registry.Unload[T](registry.Default())
}
