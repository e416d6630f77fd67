package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_Lifecycle(t *testing.T) {
	registry := NewSessionRegistry()
	assert.Equal(t, 0, registry.Count())

	session := registry.Create("test-agent/1.0", "127.0.0.1", ProtocolVersion)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, 1, registry.Count())
	assert.False(t, session.Initialized)

	fetched, found := registry.Get(session.ID)
	require.True(t, found)
	assert.Equal(t, "test-agent/1.0", fetched.UserAgent)
	assert.Equal(t, ProtocolVersion, fetched.ProtocolVersion)

	registry.MarkInitialized(session.ID)
	fetched, _ = registry.Get(session.ID)
	assert.True(t, fetched.Initialized)

	assert.True(t, registry.Delete(session.ID))
	assert.False(t, registry.Delete(session.ID))
	assert.Equal(t, 0, registry.Count())
}

func TestSessionRegistry_UniqueIDs(t *testing.T) {
	registry := NewSessionRegistry()

	first := registry.Create("", "", ProtocolVersion)
	second := registry.Create("", "", ProtocolVersion)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, registry.Count())
}

func TestSessionRegistry_GetUnknown(t *testing.T) {
	_, found := NewSessionRegistry().Get("no-such-session")
	assert.False(t, found)
}
