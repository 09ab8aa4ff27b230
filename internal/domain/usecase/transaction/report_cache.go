package transaction

import (
	"context"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/codec"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	cacheport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
)

// ComputeFunc produces the result set of a report window from the store
type ComputeFunc func(ctx context.Context, window entity.ReportWindow) ([]*entity.UserTransaction, error)

// ReportCache is a read-through cache over report windows. Entries never
// expire: a window's answer is frozen the first time it is computed.
// Concurrent misses on one window each materialize a report; the last Set wins.
type ReportCache struct {
	cache        cacheport.Cache
	materializer *ReportMaterializer
	logger       coreport.Logger
}

// NewReportCache creates a new ReportCache
func NewReportCache(cache cacheport.Cache, materializer *ReportMaterializer, logger coreport.Logger) *ReportCache {
	return &ReportCache{
		cache:        cache,
		materializer: materializer,
		logger:       logger,
	}
}

// GetOrCompute returns the cached result for window, or computes, materializes and caches it
func (c *ReportCache) GetOrCompute(ctx context.Context, window entity.ReportWindow, compute ComputeFunc) ([]entity.TransactionOut, error) {
	key := cacheport.ReportKey(window.CacheKey())

	payload, found, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil, errs.NewReportError(window.UserID, window.DateStart, window.DateEnd, "cache", err)
	}

	if found {
		out, err := codec.DecodeNested[entity.TransactionOut](payload)
		if err == nil {
			c.logger.Debug("Report cache hit", map[string]any{
				"key":   key,
				"count": len(out),
			})
			return out, nil
		}
		c.logger.Warn("Discarding undecodable cached report", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}

	transactions, err := compute(ctx, window)
	if err != nil {
		return nil, errs.NewReportError(window.UserID, window.DateStart, window.DateEnd, "query", err)
	}

	if _, err := c.materializer.Materialize(ctx, window, transactions); err != nil {
		return nil, err
	}

	out := entity.ToOutSlice(transactions)
	encoded, err := codec.EncodeNested(out)
	if err != nil {
		return nil, errs.NewReportError(window.UserID, window.DateStart, window.DateEnd, "cache", err)
	}
	if err := c.cache.Set(ctx, key, encoded); err != nil {
		return nil, errs.NewReportError(window.UserID, window.DateStart, window.DateEnd, "cache", err)
	}

	c.logger.Debug("Report cache filled", map[string]any{
		"key":   key,
		"count": len(out),
	})
	return out, nil
}
