package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndGet(t *testing.T) {
	// An unrecognized level falls back to info instead of failing
	require.NoError(t, Init("not-a-level"))

	first := Get()
	require.NotNil(t, first)

	// Get always returns the same instance once initialized
	assert.Same(t, first, Get())

	// Re-initialization is a no-op
	require.NoError(t, Init("debug"))
	assert.Same(t, first, Get())
}
