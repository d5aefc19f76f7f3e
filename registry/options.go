package registry

import (
	"time"

	"github.com/rs/zerolog"
)

// ResolveObserver is called after every Resolve with the requested key,
// the time spent and the resulting error, if any.
type ResolveObserver func(key Key, elapsed time.Duration, err error)

// Option configures a Registry built with New.
type Option func(*options)

type options struct {
	id        string
	logger    zerolog.Logger
	observers []ResolveObserver
}

func defaultOptions() *options {
	return &options{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for registration and lifecycle events.
// Registries log nothing by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithID overrides the generated registry identifier.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithResolveObserver registers a hook invoked after every resolution.
// Observers run on the resolving goroutine and must not block.
func WithResolveObserver(observer ResolveObserver) Option {
	return func(o *options) {
		if observer != nil {
			o.observers = append(o.observers, observer)
		}
	}
}

// RegisterOption modifies a single registration.
type RegisterOption interface {
	applyRegisterOption(*registerOptions)
}

type registerOptions struct {
	capabilities []capability
}

// capability is an additional key an entry answers to, with the check
// that a concrete value really satisfies it.
type capability struct {
	key       Key
	satisfied func(any) bool
}

type capabilityOption struct {
	capability capability
}

func (o capabilityOption) applyRegisterOption(opts *registerOptions) {
	for _, c := range opts.capabilities {
		if c.key == o.capability.key {
			return
		}
	}
	opts.capabilities = append(opts.capabilities, o.capability)
}

// As makes a registration resolvable as I in addition to its own type.
// I is usually an interface implemented by the factory's result. Values
// that turn out not to satisfy I are never returned for it.
//
// The check happens on the produced value, so resolving I may run the
// factory before failing: a Unique factory runs on every such Resolve, and
// a SharedLazy instance built this way stays cached.
//
// Example:
//
//	registry.Register(r, registry.SharedLazy, NewFileLogger, registry.As[Logger]())
//	logger, err := registry.Resolve[Logger](r)
func As[I any]() RegisterOption {
	return capabilityOption{capability: capability{
		key: KeyOf[I](),
		satisfied: func(v any) bool {
			_, ok := v.(I)
			return ok
		},
	}}
}
