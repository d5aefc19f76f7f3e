package registry

import "sync/atomic"

// box wraps a materialized instance so that a nil service value can still
// be told apart from "not created yet".
type box struct {
	value any
}

// entry is a single registration in one of the scope collections.
type entry struct {
	key          Key
	capabilities []capability
	scope        Scope

	// factory is nil for SharedEager entries once the instance is built.
	factory func() any

	// instance holds the eager value or the cached lazy value.
	instance atomic.Pointer[box]
}

// matches reports whether the entry was registered under k, either as its
// own type or as a declared capability.
func (e *entry) matches(k Key) bool {
	if e.key == k {
		return true
	}
	for _, c := range e.capabilities {
		if c.key == k {
			return true
		}
	}
	return false
}

// accepts reports whether v, produced by this entry, may be returned for k.
func (e *entry) accepts(k Key, v any) bool {
	if e.key == k {
		return true
	}
	for _, c := range e.capabilities {
		if c.key == k {
			return c.satisfied(v)
		}
	}
	return false
}

// cached returns the held instance, if any.
func (e *entry) cached() (any, bool) {
	b := e.instance.Load()
	if b == nil {
		return nil, false
	}
	return b.value, true
}

func (e *entry) capabilityKeys() []Key {
	if len(e.capabilities) == 0 {
		return nil
	}
	keys := make([]Key, len(e.capabilities))
	for i, c := range e.capabilities {
		keys[i] = c.key
	}
	return keys
}

// collections is an immutable snapshot of the three scope collections.
// Mutations build a new snapshot under the registry mutex.
type collections struct {
	eager  []*entry
	lazy   []*entry
	unique []*entry
}

var emptyCollections = &collections{}

func (c *collections) of(scope Scope) []*entry {
	switch scope {
	case SharedEager:
		return c.eager
	case Unique:
		return c.unique
	default:
		return c.lazy
	}
}

// find returns the first entry in the scope's collection registered under k.
func (c *collections) find(scope Scope, k Key) *entry {
	for _, e := range c.of(scope) {
		if e.matches(k) {
			return e
		}
	}
	return nil
}

// with returns a copy of c with e appended to its scope's collection.
func (c *collections) with(e *entry) *collections {
	next := *c
	switch e.scope {
	case SharedEager:
		next.eager = appendCopy(c.eager, e)
	case Unique:
		next.unique = appendCopy(c.unique, e)
	default:
		next.lazy = appendCopy(c.lazy, e)
	}
	return &next
}

// holdsLazy reports whether e is still part of the lazy collection.
func (c *collections) holdsLazy(e *entry) bool {
	for _, candidate := range c.lazy {
		if candidate == e {
			return true
		}
	}
	return false
}

func (c *collections) len() int {
	return len(c.eager) + len(c.lazy) + len(c.unique)
}

func appendCopy(entries []*entry, e *entry) []*entry {
	next := make([]*entry, len(entries), len(entries)+1)
	copy(next, entries)
	return append(next, e)
}

// without returns the entries not registered under k and how many were dropped.
func without(entries []*entry, k Key) ([]*entry, int) {
	kept := make([]*entry, 0, len(entries))
	for _, e := range entries {
		if !e.matches(k) {
			kept = append(kept, e)
		}
	}
	return kept, len(entries) - len(kept)
}
