package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/pathgrid/internal/settings"
	"github.com/vk/pathgrid/internal/status"
)

func noopPathfinder(context.Context, *settings.Bundle, string, string) (*settings.Bundle, error) {
	return settings.New(), nil
}

func TestRegisterPathfinder(t *testing.T) {
	t.Run("registers and resolves under pluginID::name", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterPathfinder("plug", "Longest", noopPathfinder))

		fn, ok := r.Resolve("plug::Longest")
		require.True(t, ok)
		assert.NotNil(t, fn)
	})

	t.Run("rejects empty identifiers and nil callbacks", func(t *testing.T) {
		r := New()
		assert.ErrorIs(t, r.RegisterPathfinder("", "Longest", noopPathfinder), status.ErrBadArgument)
		assert.ErrorIs(t, r.RegisterPathfinder("plug", "", noopPathfinder), status.ErrBadArgument)
		assert.ErrorIs(t, r.RegisterPathfinder("plug", "Longest", nil), status.ErrBadArgument)
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterPathfinder("plug", "Longest", noopPathfinder))
		assert.ErrorIs(t, r.RegisterPathfinder("plug", "Longest", noopPathfinder), status.ErrBadArgument)
	})
}

func TestResolveUnknownKey(t *testing.T) {
	r := New()
	_, ok := r.Resolve("nobody::nothing")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterPathfinder("b", "Two", noopPathfinder))
	require.NoError(t, r.RegisterPathfinder("a", "One", noopPathfinder))

	infos := r.List()
	require.Len(t, infos, 2)
	assert.Equal(t, "a::One", infos[0].Key())
	assert.Equal(t, "b::Two", infos[1].Key())
}

func TestUnregisterPlugin(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterPathfinder("plug", "One", noopPathfinder))
	require.NoError(t, r.RegisterPathfinder("plug", "Two", noopPathfinder))
	require.NoError(t, r.RegisterPathfinder("other", "One", noopPathfinder))

	r.UnregisterPlugin("plug")

	_, ok := r.Resolve("plug::One")
	assert.False(t, ok)
	_, ok = r.Resolve("plug::Two")
	assert.False(t, ok)
	_, ok = r.Resolve("other::One")
	assert.True(t, ok)

	// Unknown or empty plugin IDs are no-ops.
	r.UnregisterPlugin("")
	r.UnregisterPlugin("ghost")
	assert.Len(t, r.List(), 1)
}
