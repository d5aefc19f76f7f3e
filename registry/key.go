package registry

import (
	"fmt"
	"strings"
)

// typeTag is a zero-size marker whose instantiation identifies a Go type.
// Two interface values holding typeTag[A]{} and typeTag[B]{} are equal
// only when A and B are the same type.
type typeTag[T any] struct{}

// Key identifies a service type.
//
// Keys are comparable and may be used as map keys. Build them with KeyOf.
type Key struct {
	id   any
	name string
}

// KeyOf returns the key for service type T.
//
// Example:
//
//	registry.KeyOf[*Database]()
//	registry.KeyOf[Logger]()
func KeyOf[T any]() Key {
	return Key{
		id:   typeTag[T]{},
		name: typeName[T](),
	}
}

// typeName renders T the way fmt does, without the pointer we add to
// make interface types printable.
func typeName[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*")
}

// IsZero reports whether the key was not built with KeyOf.
func (k Key) IsZero() bool { return k.id == nil }

// String returns the Go type name the key stands for.
func (k Key) String() string {
	if k.IsZero() {
		return "<nil>"
	}
	return k.name
}

// shortName drops the package qualifier, used to suggest similar keys.
func (k Key) shortName() string {
	name := strings.TrimLeft(k.name, "*[]")
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return name[idx+1:]
	}
	return name
}
