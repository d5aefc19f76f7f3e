// Package locator provides a thread-safe service locator for Go applications.
//
// Services are registered as factory functions keyed by type and resolved
// later through one of three scopes. The registry itself lives in the
// registry package; this package forwards to the process-wide default
// registry so that application code can register and resolve without
// passing a registry around.
//
// # Basic Usage
//
//	locator.Register(locator.SharedLazy, NewDatabase)
//	locator.Register(locator.Unique, NewRequestID)
//
//	db, err := locator.Resolve[*Database]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Scopes
//
//   - SharedLazy: one instance, created on first resolution (the default)
//   - SharedEager: one instance, created during registration
//   - Unique: a new instance on every resolution
//
// Registering a type twice in the same scope has no effect: the first
// registration wins.
//
// # Interfaces
//
// A registration resolves as its factory's result type. Declare the
// interfaces it should also answer to with As:
//
//	locator.Register(locator.SharedLazy, NewFileLogger, locator.As[Logger]())
//	logger := locator.MustResolve[Logger]()
//
// # Unload and Unregister
//
// Unload drops cached instances while keeping lazy factories, so the next
// resolution builds a new instance. Unregister removes a service from all
// scopes.
//
// # Local registries
//
// Tests and libraries that need isolation should build their own registry
// with registry.New and use the generic functions of the registry package,
// or install one as the default with registry.SetDefault.
//
// # Field injection
//
// The inject package wraps resolution for struct fields and panics when a
// required service is missing.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Factories run outside the
// registry lock and may themselves register or resolve services.
package locator
