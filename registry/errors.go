package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrServiceNotFound is the sentinel matched by every ServiceNotFoundError.
var ErrServiceNotFound = errors.New("service not found")

var (
	_ error = (*ServiceNotFoundError)(nil)
	_ error = ScopeError{}
)

// ServiceNotFoundError is returned by Resolve when no scope holds an entry
// matching the requested key.
type ServiceNotFoundError struct {
	Key       Key
	Available []Key // keys registered at the time of the lookup
}

func (e *ServiceNotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("service not found: %s", e.Key))

	if similar := findSimilarKeys(e.Key, e.Available); len(similar) > 0 {
		b.WriteString("\n\nDid you mean one of these?\n")
		for _, k := range similar {
			b.WriteString(fmt.Sprintf("  • %s\n", k))
		}
	}

	return b.String()
}

// Is reports whether target is ErrServiceNotFound.
func (e *ServiceNotFoundError) Is(target error) bool {
	return target == ErrServiceNotFound
}

func (e *ServiceNotFoundError) Unwrap() error {
	return ErrServiceNotFound
}

// IsNotFound reports whether err is, or wraps, a service-not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrServiceNotFound)
}

// ScopeError indicates an invalid scope value.
type ScopeError struct {
	Value any
}

func (e ScopeError) Error() string {
	return fmt.Sprintf("invalid scope: %v", e.Value)
}

// findSimilarKeys returns registered keys whose names resemble target.
func findSimilarKeys(target Key, available []Key) []Key {
	if target.IsZero() || len(available) == 0 {
		return nil
	}

	targetShort := strings.ToLower(target.shortName())
	targetName := strings.ToLower(target.String())

	var similar []Key
	seen := make(map[Key]struct{}, len(available))
	for _, k := range available {
		if k.IsZero() || k == target {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		short := strings.ToLower(k.shortName())
		name := strings.ToLower(k.String())
		if short == targetShort ||
			strings.Contains(name, targetShort) ||
			strings.Contains(targetName, short) {
			similar = append(similar, k)
		}

		if len(similar) >= 5 {
			break
		}
	}

	return similar
}
