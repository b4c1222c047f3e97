package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The product and comparison payloads use camelCase keys throughout.
func TestResponseKeysAreCamelCase(t *testing.T) {
	t.Run("product response", func(t *testing.T) {
		raw, err := json.Marshal(ProductResponse{CreatedAt: "2026-08-31T00:00:00Z"})
		require.NoError(t, err)

		var keys map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &keys))

		assert.Contains(t, keys, "createdAt")
		assert.Contains(t, keys, "sustainabilityScore")
		assert.NotContains(t, keys, "created_at")
	})

	t.Run("comparison history item", func(t *testing.T) {
		raw, err := json.Marshal(ComparisonHistoryItem{CreatedAt: "2026-08-31T00:00:00Z"})
		require.NoError(t, err)

		var keys map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &keys))

		assert.Contains(t, keys, "createdAt")
		assert.Contains(t, keys, "sustainabilityHighlights")
		assert.Contains(t, keys, "comparisonGraph")
		assert.NotContains(t, keys, "created_at")
	})
}
