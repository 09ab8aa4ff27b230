package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
)

// ConnectionPoolMetrics is a snapshot of database/sql pool statistics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
	Healthy            bool
}

// exhaustionRatio is the in-use share of the pool above which a warning is logged
const exhaustionRatio = 0.8

// ConnectionPoolMonitor periodically pings the database and records pool statistics
type ConnectionPoolMonitor struct {
	sqlDB       *sql.DB
	logger      coreport.Logger
	pingTimeout time.Duration

	mutex        sync.RWMutex
	metricsCache ConnectionPoolMetrics

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(sqlDB *sql.DB, logger coreport.Logger, pingTimeout time.Duration) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		sqlDB:       sqlDB,
		logger:      logger,
		pingTimeout: pingTimeout,
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start collects once, then again every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.Collect(context.Background())

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.Collect(context.Background())
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring goroutine and waits for it to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
		<-m.done
	})
}

// GetMetrics returns the latest snapshot
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.metricsCache
}

// Collect pings the database and refreshes the snapshot
func (m *ConnectionPoolMonitor) Collect(ctx context.Context) ConnectionPoolMetrics {
	pingCtx, cancel := context.WithTimeout(ctx, m.pingTimeout)
	defer cancel()

	healthy := true
	if err := m.sqlDB.PingContext(pingCtx); err != nil {
		healthy = false
		m.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
	}

	stats := m.sqlDB.Stats()
	metrics := ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
		Healthy:            healthy,
	}

	m.mutex.Lock()
	m.metricsCache = metrics
	m.mutex.Unlock()

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*exhaustionRatio {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	} else {
		m.logger.Debug("Database connection pool stats", map[string]any{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
			"wait_count":       stats.WaitCount,
		})
	}

	return metrics
}
