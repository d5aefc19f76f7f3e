package testutil

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Service is a basic shared service carrying a unique identity.
type Service struct {
	UUID string
}

// NewService creates a Service with a fresh UUID.
func NewService() *Service {
	return &Service{UUID: uuid.NewString()}
}

// Greeter is implemented by EnglishGreeter but not by Service.
type Greeter interface {
	Greet(name string) string
}

// Closer is implemented by no fixture type.
type Closer interface {
	Close() error
}

// EnglishGreeter implements Greeter.
type EnglishGreeter struct {
	ID string
}

// NewEnglishGreeter creates an EnglishGreeter with a fresh ID.
func NewEnglishGreeter() *EnglishGreeter {
	return &EnglishGreeter{ID: uuid.NewString()}
}

func (g *EnglishGreeter) Greet(name string) string {
	return "Hello, " + name
}

// Counter counts the instances created by its factory.
type Counter struct {
	created atomic.Int64
}

// Instance is a value produced by a counting factory.
type Instance struct {
	Seq  int64
	UUID string
}

// Factory returns a factory recording every call on c.
func (c *Counter) Factory() func() *Instance {
	return func() *Instance {
		return &Instance{
			Seq:  c.created.Add(1),
			UUID: uuid.NewString(),
		}
	}
}

// Count returns how many instances were created.
func (c *Counter) Count() int64 {
	return c.created.Load()
}

// Gate blocks factories until released, to line up concurrent callers.
type Gate struct {
	once    sync.Once
	release chan struct{}
}

// NewGate creates a closed gate.
func NewGate() *Gate {
	return &Gate{release: make(chan struct{})}
}

// Wait blocks until Open is called.
func (g *Gate) Wait() {
	<-g.release
}

// Open releases all current and future waiters.
func (g *Gate) Open() {
	g.once.Do(func() { close(g.release) })
}
