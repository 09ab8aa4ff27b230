package cache

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	cacheport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings for the shared cache
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache stores entries in Redis without expiry
type RedisCache struct {
	client *redis.Client
	logger coreport.Logger
}

// NewRedisCache creates a cache over a new client. Call Ping to verify connectivity.
func NewRedisCache(cfg RedisConfig, logger coreport.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisCacheWithClient(client, logger)
}

// NewRedisCacheWithClient wraps an existing client
func NewRedisCacheWithClient(client *redis.Client, logger coreport.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

var _ cacheport.Cache = (*RedisCache)(nil)

// Get returns the stored value for key. redis.Nil is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		c.logger.Error("Redis GET failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return "", false, fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}
	return value, true, nil
}

// Set stores value under key with no expiration
func (c *RedisCache) Set(ctx context.Context, key string, value string) error {
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		c.logger.Error("Redis SET failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}
	return nil
}

// Ping checks that the server is reachable
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrCacheUnavailable, err)
	}
	return nil
}

// Close releases the client's connections
func (c *RedisCache) Close() error {
	return c.client.Close()
}
