package registry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Scope specifies how a registered service is cached.
// The zero value is SharedLazy.
type Scope int

const (
	// SharedLazy creates a single instance on first resolution and caches it
	// until the service is unloaded or unregistered.
	SharedLazy Scope = iota

	// SharedEager creates a single instance immediately at registration.
	// Only the instance is kept; the factory is discarded.
	SharedEager

	// Unique creates a new instance on every resolution. Nothing is cached.
	Unique
)

// String returns the string representation of the Scope.
func (s Scope) String() string {
	switch s {
	case SharedLazy:
		return "SharedLazy"
	case SharedEager:
		return "SharedEager"
	case Unique:
		return "Unique"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// IsValid checks if the scope is one of the defined values.
func (s Scope) IsValid() bool {
	return s >= SharedLazy && s <= Unique
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ScopeError{Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "sharedlazy", "shared", "lazy":
		*s = SharedLazy
	case "sharedeager", "eager":
		*s = SharedEager
	case "unique", "transient":
		*s = Unique
	default:
		return ScopeError{Value: string(text)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Scope) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	return s.UnmarshalText([]byte(text))
}
