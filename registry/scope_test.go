package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/junioryono/locator/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	t.Run("zero value is SharedLazy", func(t *testing.T) {
		var scope registry.Scope
		assert.Equal(t, registry.SharedLazy, scope)
	})

	t.Run("String", func(t *testing.T) {
		tests := []struct {
			scope    registry.Scope
			expected string
		}{
			{registry.SharedLazy, "SharedLazy"},
			{registry.SharedEager, "SharedEager"},
			{registry.Unique, "Unique"},
			{registry.Scope(999), "Unknown(999)"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.scope.String())
		}
	})

	t.Run("IsValid", func(t *testing.T) {
		assert.True(t, registry.SharedLazy.IsValid())
		assert.True(t, registry.SharedEager.IsValid())
		assert.True(t, registry.Unique.IsValid())
		assert.False(t, registry.Scope(-1).IsValid())
		assert.False(t, registry.Scope(3).IsValid())
	})

	t.Run("UnmarshalText", func(t *testing.T) {
		tests := []struct {
			text     string
			expected registry.Scope
		}{
			{"SharedLazy", registry.SharedLazy},
			{"shared", registry.SharedLazy},
			{"LAZY", registry.SharedLazy},
			{"SharedEager", registry.SharedEager},
			{"eager", registry.SharedEager},
			{"Unique", registry.Unique},
			{"transient", registry.Unique},
		}

		for _, tt := range tests {
			t.Run(tt.text, func(t *testing.T) {
				var scope registry.Scope
				require.NoError(t, scope.UnmarshalText([]byte(tt.text)))
				assert.Equal(t, tt.expected, scope)
			})
		}

		var scope registry.Scope
		err := scope.UnmarshalText([]byte("scoped"))
		assert.EqualError(t, err, "invalid scope: scoped")
		assert.IsType(t, registry.ScopeError{}, err)
	})

	t.Run("JSON", func(t *testing.T) {
		type config struct {
			Scope registry.Scope `json:"scope"`
		}

		data, err := json.Marshal(config{Scope: registry.Unique})
		require.NoError(t, err)
		assert.JSONEq(t, `{"scope":"Unique"}`, string(data))

		var decoded config
		require.NoError(t, json.Unmarshal([]byte(`{"scope":"eager"}`), &decoded))
		assert.Equal(t, registry.SharedEager, decoded.Scope)

		assert.Error(t, json.Unmarshal([]byte(`{"scope":"sometimes"}`), &decoded))
		assert.Error(t, json.Unmarshal([]byte(`{"scope":1}`), &decoded))

		_, err = json.Marshal(config{Scope: registry.Scope(7)})
		assert.Error(t, err)
	})
}
