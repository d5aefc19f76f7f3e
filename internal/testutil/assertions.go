package testutil

import (
	"testing"

	"github.com/junioryono/locator/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertResolvable checks that T resolves and returns it.
func AssertResolvable[T any](t *testing.T, r *registry.Registry) T {
	t.Helper()
	service, err := registry.Resolve[T](r)
	require.NoError(t, err, "failed to resolve service of type %s", registry.KeyOf[T]())
	return service
}

// AssertNotFound checks that resolving T fails with a not-found error.
func AssertNotFound[T any](t *testing.T, r *registry.Registry) {
	t.Helper()
	_, err := registry.Resolve[T](r)
	require.Error(t, err)
	assert.True(t, registry.IsNotFound(err), "expected service not found error, got: %v", err)

	var notFound *registry.ServiceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, registry.KeyOf[T](), notFound.Key)
}

// AssertPanicsWithError checks that f panics with an error matching target.
func AssertPanicsWithError(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			assert.Fail(t, "function did not panic")
			return
		}

		err, ok := r.(error)
		if !ok {
			assert.Fail(t, "panic value is not an error", "%v", r)
			return
		}
		assert.ErrorIs(t, err, target)
	}()

	f()
}
