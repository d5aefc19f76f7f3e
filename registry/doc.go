// Package registry implements a thread-safe, type-keyed service registry.
//
// Services are registered as factories under one of three scopes and later
// resolved by type:
//
//   - SharedLazy: created on first resolution and cached (the default)
//   - SharedEager: created during registration and cached
//   - Unique: created on every resolution, never cached
//
// # Registration
//
//	r := registry.New()
//	registry.Register(r, registry.SharedLazy, NewDatabase)
//	registry.Register(r, registry.Unique, NewRequestID)
//
// The first registration for a type in a scope wins; later ones are ignored.
//
// # Capabilities
//
// A registration answers to its factory's result type. Use As to make it
// resolvable under additional types, typically interfaces:
//
//	registry.Register(r, registry.SharedLazy, NewFileLogger, registry.As[Logger]())
//	logger, err := registry.Resolve[Logger](r)
//
// # Unload and Unregister
//
// Unload drops cached shared instances but keeps lazy factories, so the
// next resolution builds a new instance. Unregister removes the service
// from every scope.
//
// # Default registry
//
// Default returns a process-wide registry created on first use. Tests
// should prefer independent registries built with New.
package registry
