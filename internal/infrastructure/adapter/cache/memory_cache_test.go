package cache

import (
	"context"
	"sync"
	"testing"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Miss is not an error", func(t *testing.T) {
		c := NewMemoryCache(logger.NewNoopLogger())

		value, found, err := c.Get(ctx, "report:missing")

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("Set then Get returns the value", func(t *testing.T) {
		c := NewMemoryCache(logger.NewNoopLogger())

		require.NoError(t, c.Set(ctx, "tt_id:deposit", "1"))
		value, found, err := c.Get(ctx, "tt_id:deposit")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "1", value)
	})

	t.Run("Last write wins", func(t *testing.T) {
		c := NewMemoryCache(logger.NewNoopLogger())

		require.NoError(t, c.Set(ctx, "k", "first"))
		require.NoError(t, c.Set(ctx, "k", "second"))
		value, _, _ := c.Get(ctx, "k")

		assert.Equal(t, "second", value)
	})

	t.Run("Canceled context surfaces ErrCacheUnavailable", func(t *testing.T) {
		c := NewMemoryCache(logger.NewNoopLogger())
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := c.Set(canceled, "k", "v")
		assert.ErrorIs(t, err, errs.ErrCacheUnavailable)
		assert.ErrorIs(t, err, context.Canceled)

		_, _, err = c.Get(canceled, "k")
		assert.ErrorIs(t, err, errs.ErrCacheUnavailable)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Concurrent writers do not corrupt entries", func(t *testing.T) {
		c := NewMemoryCache(logger.NewNoopLogger())
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = c.Set(ctx, "shared", "value")
			}()
		}
		wg.Wait()

		value, found, err := c.Get(ctx, "shared")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "value", value)
	})
}
