package registry

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Registry stores service registrations and resolves them by type.
//
// A Registry is safe for concurrent use. Registrations live in three
// collections, one per Scope. Resolve searches SharedEager, then
// SharedLazy, then Unique; within a collection the first registration wins.
//
// Factories always run outside the registry lock, so they may register or
// resolve other services on the same registry.
type Registry struct {
	id        string
	logger    zerolog.Logger
	observers []ResolveObserver

	// mu serializes every mutation of state and of lazy cache slots.
	mu    sync.Mutex
	state atomic.Pointer[collections]
}

// RegistrationInfo describes a registered entry for introspection.
type RegistrationInfo struct {
	Key          Key
	Capabilities []Key
	Scope        Scope
	Materialized bool
}

// New creates an empty, independent Registry.
//
// Example:
//
//	r := registry.New(registry.WithLogger(log))
//	registry.Register(r, registry.SharedLazy, NewDatabase)
func New(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if o.id == "" {
		o.id = uuid.NewString()
	}

	r := &Registry{
		id:        o.id,
		observers: o.observers,
	}
	r.logger = o.logger.With().Str("registry_id", o.id).Logger()
	r.state.Store(emptyCollections)
	return r
}

// ID returns the unique identifier of the registry.
func (r *Registry) ID() string {
	return r.id
}

// Len returns the number of entries across all scopes.
func (r *Registry) Len() int {
	return r.state.Load().len()
}

// Reset drops every registration and cached instance.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Store(emptyCollections)
	r.logger.Debug().Msg("registry reset")
}

// Registrations returns every entry in resolution order.
func (r *Registry) Registrations() []RegistrationInfo {
	s := r.state.Load()

	result := make([]RegistrationInfo, 0, s.len())
	for _, entries := range [][]*entry{s.eager, s.lazy, s.unique} {
		for _, e := range entries {
			_, materialized := e.cached()
			result = append(result, RegistrationInfo{
				Key:          e.key,
				Capabilities: e.capabilityKeys(),
				Scope:        e.scope,
				Materialized: materialized,
			})
		}
	}
	return result
}

// Register adds factory under T's key in the given scope.
//
// Registration never replaces: if the scope's collection already holds an
// entry for T, the call has no effect. SharedEager factories are invoked
// before Register returns. An invalid scope falls back to SharedLazy.
//
// Example:
//
//	registry.Register(r, registry.SharedLazy, func() *Cache { return NewCache() })
//	registry.Register(r, registry.Unique, NewRequest, registry.As[Request]())
func Register[T any](r *Registry, scope Scope, factory func() T, opts ...RegisterOption) {
	key := KeyOf[T]()
	if factory == nil {
		r.logger.Warn().Str("service", key.String()).Msg("ignoring registration with nil factory")
		return
	}

	ro := &registerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt.applyRegisterOption(ro)
		}
	}

	r.register(key, scope, func() any { return factory() }, ro.capabilities)
}

func (r *Registry) register(key Key, scope Scope, factory func() any, capabilities []capability) {
	if !scope.IsValid() {
		r.logger.Warn().Str("service", key.String()).Int("scope", int(scope)).Msg("invalid scope, using SharedLazy")
		scope = SharedLazy
	}

	e := &entry{
		key:          key,
		capabilities: capabilities,
		scope:        scope,
		factory:      factory,
	}

	if scope == SharedEager {
		if r.state.Load().find(scope, key) != nil {
			r.logDuplicate(key, scope)
			return
		}

		e.instance.Store(&box{value: factory()})
		e.factory = nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.state.Load()
	if s.find(scope, key) != nil {
		if scope == SharedEager {
			r.logger.Warn().Str("service", key.String()).Msg("eager instance discarded, service registered concurrently")
			return
		}
		r.logDuplicate(key, scope)
		return
	}

	r.state.Store(s.with(e))
	r.logger.Debug().Str("service", key.String()).Stringer("scope", scope).Msg("service registered")
}

func (r *Registry) logDuplicate(key Key, scope Scope) {
	r.logger.Debug().Str("service", key.String()).Stringer("scope", scope).Msg("service already registered, ignoring")
}

// Resolve returns an instance of T.
//
// It fails with a *ServiceNotFoundError when no scope holds a matching
// entry. Use IsNotFound to test for it.
//
// Example:
//
//	db, err := registry.Resolve[*Database](r)
//	if err != nil {
//	    return fmt.Errorf("database: %w", err)
//	}
func Resolve[T any](r *Registry) (T, error) {
	key := KeyOf[T]()

	start := time.Now()
	v, err := r.resolve(key)
	r.observe(key, time.Since(start), err)

	if err != nil {
		var zero T
		return zero, err
	}

	// v is nil only when a factory for an interface type returned nil.
	result, _ := v.(T)
	return result, nil
}

// MustResolve resolves T, panicking with the ServiceNotFoundError on failure.
func MustResolve[T any](r *Registry) T {
	result, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return result
}

// TryResolve resolves T and reports whether it was found.
// Use this when a dependency is optional.
func TryResolve[T any](r *Registry) (T, bool) {
	result, err := Resolve[T](r)
	return result, err == nil
}

func (r *Registry) resolve(key Key) (any, error) {
	s := r.state.Load()

	for _, e := range s.eager {
		if !e.matches(key) {
			continue
		}
		if v, ok := e.cached(); ok && e.accepts(key, v) {
			return v, nil
		}
	}

	for _, e := range s.lazy {
		if !e.matches(key) {
			continue
		}
		v, ok := e.cached()
		if !ok {
			v = r.materialize(e)
		}
		if e.accepts(key, v) {
			return v, nil
		}
	}

	for _, e := range s.unique {
		if !e.matches(key) {
			continue
		}
		if v := e.factory(); e.accepts(key, v) {
			return v, nil
		}
	}

	return nil, r.notFound(key, s)
}

// materialize runs a lazy entry's factory outside the lock and installs
// the result unless another caller got there first.
func (r *Registry) materialize(e *entry) any {
	v := e.factory()

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := e.cached(); ok {
		r.logger.Warn().Str("service", e.key.String()).Msg("concurrent construction, discarding duplicate instance")
		return current
	}

	if !r.state.Load().holdsLazy(e) {
		// Unregistered while the factory ran.
		r.logger.Debug().Str("service", e.key.String()).Msg("service unregistered during construction, instance not cached")
		return v
	}

	e.instance.Store(&box{value: v})
	r.logger.Debug().Str("service", e.key.String()).Msg("service materialized")
	return v
}

func (r *Registry) notFound(key Key, s *collections) error {
	available := make([]Key, 0, s.len())
	for _, entries := range [][]*entry{s.eager, s.lazy, s.unique} {
		for _, e := range entries {
			available = append(available, e.key)
			available = append(available, e.capabilityKeys()...)
		}
	}
	return &ServiceNotFoundError{Key: key, Available: available}
}

func (r *Registry) observe(key Key, elapsed time.Duration, err error) {
	for _, observer := range r.observers {
		observer(key, elapsed, err)
	}
}

// Cached returns the shared instance of T currently held by the registry
// without creating one. It reports false for Unique services and for
// SharedLazy services that were never resolved or have been unloaded.
func Cached[T any](r *Registry) (T, bool) {
	key := KeyOf[T]()
	s := r.state.Load()

	for _, entries := range [][]*entry{s.eager, s.lazy} {
		for _, e := range entries {
			if !e.matches(key) {
				continue
			}
			if v, ok := e.cached(); ok && e.accepts(key, v) {
				result, _ := v.(T)
				return result, true
			}
		}
	}

	var zero T
	return zero, false
}

// Contains reports whether any scope holds an entry registered as T.
func Contains[T any](r *Registry) bool {
	key := KeyOf[T]()
	s := r.state.Load()

	for _, entries := range [][]*entry{s.eager, s.lazy, s.unique} {
		for _, e := range entries {
			if e.matches(key) {
				return true
			}
		}
	}
	return false
}

// Unregister removes every entry registered as T from all scopes.
// Resolving T fails afterwards until it is registered again.
func Unregister[T any](r *Registry) {
	r.unregister(KeyOf[T]())
}

func (r *Registry) unregister(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.state.Load()
	eager, n1 := without(s.eager, key)
	lazy, n2 := without(s.lazy, key)
	unique, n3 := without(s.unique, key)

	removed := n1 + n2 + n3
	if removed == 0 {
		return
	}

	r.state.Store(&collections{eager: eager, lazy: lazy, unique: unique})
	r.logger.Debug().Str("service", key.String()).Int("entries", removed).Msg("service unregistered")
}

// Unload drops the shared instances registered as T while keeping
// SharedLazy factories, so the next Resolve builds a fresh instance.
// SharedEager entries have no factory and are removed entirely.
func Unload[T any](r *Registry) {
	r.unload(KeyOf[T]())
}

func (r *Registry) unload(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.state.Load()

	cleared := 0
	for _, e := range s.lazy {
		if e.matches(key) && e.instance.Swap(nil) != nil {
			cleared++
		}
	}

	eager, removed := without(s.eager, key)
	if removed > 0 {
		next := *s
		next.eager = eager
		r.state.Store(&next)
	}

	if cleared+removed > 0 {
		r.logger.Debug().Str("service", key.String()).Int("instances", cleared+removed).Msg("service unloaded")
	}
}
