package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Every read query must carry the retention predicate so expired rows never
// surface, regardless of whether the sweeper has run yet.
func TestComparisonQueriesFilterExpiredRows(t *testing.T) {
	repo := NewComparisonRepository(nil, 30*24*time.Hour, zap.NewNop())

	t.Run("list recent by user", func(t *testing.T) {
		sql, args, err := repo.listRecentQuery(uuid.New(), 10).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "created_at > NOW() - ($2 * INTERVAL '1 day')")
		assert.Contains(t, sql, "ORDER BY created_at DESC")
		assert.Contains(t, sql, "LIMIT 10")
		assert.Contains(t, args, 30)
	})

	t.Run("get by id", func(t *testing.T) {
		sql, args, err := repo.getByIDQuery(uuid.New()).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "created_at > NOW() - ($2 * INTERVAL '1 day')")
		assert.Contains(t, args, 30)
	})

	t.Run("trend", func(t *testing.T) {
		sql, args, err := repo.trendQuery().ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "created_at >= NOW() - INTERVAL '7 days'")
		assert.Contains(t, sql, "created_at > NOW() - ($1 * INTERVAL '1 day')")
		assert.Contains(t, args, 30)
	})
}

func TestNewComparisonRepositoryRetentionWindow(t *testing.T) {
	t.Run("custom window in days", func(t *testing.T) {
		repo := NewComparisonRepository(nil, 7*24*time.Hour, zap.NewNop())

		_, args, err := repo.getByIDQuery(uuid.New()).ToSql()
		require.NoError(t, err)
		assert.Contains(t, args, 7)
	})

	t.Run("non-positive window falls back to 30 days", func(t *testing.T) {
		repo := NewComparisonRepository(nil, 0, zap.NewNop())

		_, args, err := repo.getByIDQuery(uuid.New()).ToSql()
		require.NoError(t, err)
		assert.Contains(t, args, 30)
	})
}
