package cache

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	cacheport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
)

// MemoryCache is a process-wide cache backed by sync.Map.
// Entries live until the process exits.
type MemoryCache struct {
	entries sync.Map // map[string]string
	logger  coreport.Logger
}

// NewMemoryCache creates an empty in-process cache
func NewMemoryCache(logger coreport.Logger) *MemoryCache {
	return &MemoryCache{logger: logger}
}

var _ cacheport.Cache = (*MemoryCache)(nil)

// Get returns the stored value for key
func (c *MemoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}

	raw, ok := c.entries.Load(key)
	if !ok {
		return "", false, nil
	}

	value, ok := raw.(string)
	if !ok {
		c.logger.Error("Unexpected value type in memory cache", map[string]any{
			"key": key,
		})
		return "", false, errs.ErrCacheUnavailable
	}
	return value, true, nil
}

// Set stores value under key
func (c *MemoryCache) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}

	c.entries.Store(key, value)
	c.logger.Debug("Memory cache entry stored", map[string]any{
		"key":  key,
		"size": len(value),
	})
	return nil
}
