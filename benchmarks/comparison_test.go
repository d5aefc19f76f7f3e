// Package benchmarks compares locator with other Go DI libraries.
//
// Run benchmarks with: go test -bench=. -benchmem ./benchmarks/
package benchmarks

import (
	"testing"

	"github.com/junioryono/locator/registry"
	"github.com/samber/do/v2"
	"go.uber.org/dig"
)

// =============================================================================
// Shared Test Types
// =============================================================================

type Logger struct {
	Name string
}

func NewLogger() *Logger {
	return &Logger{Name: "logger"}
}

type Config struct {
	Value string
}

func NewConfig() *Config {
	return &Config{Value: "config"}
}

type Request struct {
	ID int
}

func NewRequest() *Request {
	return &Request{ID: 1}
}

type Greeter interface {
	Greet() string
}

func (l *Logger) Greet() string { return l.Name }

// =============================================================================
// Registration Benchmarks
// =============================================================================

func BenchmarkRegister_Locator(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := registry.New(registry.WithID("bench"))
		registry.Register(r, registry.SharedLazy, NewLogger)
		registry.Register(r, registry.SharedLazy, NewConfig)
		registry.Register(r, registry.Unique, NewRequest)
	}
}

func BenchmarkRegister_Dig(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := dig.New()
		c.Provide(NewLogger)
		c.Provide(NewConfig)
		c.Provide(NewRequest)
	}
}

func BenchmarkRegister_Do(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		injector := do.New()
		do.Provide(injector, func(i do.Injector) (*Logger, error) { return NewLogger(), nil })
		do.Provide(injector, func(i do.Injector) (*Config, error) { return NewConfig(), nil })
		do.ProvideTransient(injector, func(i do.Injector) (*Request, error) { return NewRequest(), nil })
		injector.Shutdown()
	}
}

// =============================================================================
// Shared Resolution Benchmarks
// =============================================================================

func BenchmarkResolve_Shared_Locator(b *testing.B) {
	r := registry.New()
	registry.Register(r, registry.SharedLazy, NewLogger)

	// Warm up
	registry.MustResolve[*Logger](r)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = registry.MustResolve[*Logger](r)
	}
}

func BenchmarkResolve_Shared_Dig(b *testing.B) {
	c := dig.New()
	c.Provide(NewLogger)

	// Warm up
	c.Invoke(func(l *Logger) {})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Invoke(func(l *Logger) {})
	}
}

func BenchmarkResolve_Shared_Do(b *testing.B) {
	injector := do.New()
	do.Provide(injector, func(i do.Injector) (*Logger, error) { return NewLogger(), nil })

	// Warm up
	do.MustInvoke[*Logger](injector)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = do.MustInvoke[*Logger](injector)
	}
}

// =============================================================================
// Capability Resolution Benchmarks
// =============================================================================

func BenchmarkResolve_Interface_Locator(b *testing.B) {
	r := registry.New()
	registry.Register(r, registry.SharedLazy, NewLogger, registry.As[Greeter]())
	registry.MustResolve[Greeter](r)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = registry.MustResolve[Greeter](r)
	}
}

func BenchmarkResolve_Interface_Dig(b *testing.B) {
	c := dig.New()
	c.Provide(NewLogger, dig.As(new(Greeter)))
	c.Invoke(func(g Greeter) {})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Invoke(func(g Greeter) {})
	}
}

// =============================================================================
// Unique Resolution Benchmarks
// =============================================================================

func BenchmarkResolve_Unique_Locator(b *testing.B) {
	r := registry.New()
	registry.Register(r, registry.Unique, NewRequest)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = registry.MustResolve[*Request](r)
	}
}

func BenchmarkResolve_Unique_Do(b *testing.B) {
	injector := do.New()
	do.ProvideTransient(injector, func(i do.Injector) (*Request, error) { return NewRequest(), nil })

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = do.MustInvoke[*Request](injector)
	}
}

// =============================================================================
// Concurrent Resolution Benchmarks
// =============================================================================

func BenchmarkResolve_Parallel_Locator(b *testing.B) {
	r := registry.New()
	registry.Register(r, registry.SharedLazy, NewLogger)
	registry.MustResolve[*Logger](r)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = registry.MustResolve[*Logger](r)
		}
	})
}

func BenchmarkResolve_Parallel_Dig(b *testing.B) {
	c := dig.New()
	c.Provide(NewLogger)
	c.Invoke(func(l *Logger) {})

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Invoke(func(l *Logger) {})
		}
	})
}
