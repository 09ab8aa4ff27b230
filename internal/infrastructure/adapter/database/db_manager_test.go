package database

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ConnectAndPing(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())

	assert.NoError(t, tdb.Manager.Ping(context.Background()))
	assert.Equal(t, int64(2), tdb.CountRows(t, &model.TransactionType{}))
}

func TestManager_ConnectRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Driver = "oracle"

	_, err := NewManager(cfg, logger.NewNoopLogger(), nil).Connect(context.Background())
	assert.Error(t, err)
}

func TestManager_WithTimeout(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())

	ctx, cancel := tdb.Manager.WithTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func TestManager_PoolMonitor(t *testing.T) {
	tdb := NewTestDBManager(t, logger.NewNoopLogger())

	_, enabled := tdb.Manager.PoolMetrics()
	assert.False(t, enabled)

	sqlDB, err := tdb.DB().DB()
	require.NoError(t, err)
	monitor := NewConnectionPoolMonitor(sqlDB, logger.NewNoopLogger(), time.Second)
	monitor.Start(time.Hour)
	defer monitor.Stop()

	metrics := monitor.GetMetrics()
	assert.True(t, metrics.Healthy)
	assert.Equal(t, 1, metrics.MaxOpenConnections)
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Commit persists report", func(t *testing.T) {
		tdb := NewTestDBManager(t, logger.NewNoopLogger())
		tdb.CreateTestUser(t, 1)
		uow := tdb.Manager.CreateUnitOfWork()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		report := &entity.TransactionReport{UserID: 1, DateStart: start, DateEnd: start}
		require.NoError(t, uow.GetReportRepository(txCtx).Create(txCtx, report))
		require.NoError(t, uow.Commit(txCtx))

		assert.Equal(t, int64(1), tdb.CountRows(t, &model.TransactionReport{}))
	})

	t.Run("Rollback discards report", func(t *testing.T) {
		tdb := NewTestDBManager(t, logger.NewNoopLogger())
		tdb.CreateTestUser(t, 1)
		uow := tdb.Manager.CreateUnitOfWork()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		report := &entity.TransactionReport{UserID: 1, DateStart: start, DateEnd: start}
		require.NoError(t, uow.GetReportRepository(txCtx).Create(txCtx, report))
		require.NoError(t, uow.Rollback(txCtx))

		assert.Zero(t, tdb.CountRows(t, &model.TransactionReport{}))
	})

	t.Run("Rollback after commit is tolerated", func(t *testing.T) {
		tdb := NewTestDBManager(t, logger.NewNoopLogger())
		uow := tdb.Manager.CreateUnitOfWork()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Commit(txCtx))
		assert.NoError(t, uow.Rollback(txCtx))
	})

	t.Run("Commit without transaction", func(t *testing.T) {
		tdb := NewTestDBManager(t, logger.NewNoopLogger())
		uow := tdb.Manager.CreateUnitOfWork()

		assert.ErrorIs(t, uow.Commit(ctx), ErrNoTransaction)
	})

	t.Run("Foreign key violation inside transaction", func(t *testing.T) {
		tdb := NewTestDBManager(t, logger.NewNoopLogger())
		uow := tdb.Manager.CreateUnitOfWork()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		err = uow.GetReportRepository(txCtx).Create(txCtx, &entity.TransactionReport{UserID: 99, DateStart: start, DateEnd: start})
		assert.ErrorIs(t, err, errs.ErrForeignKeyViolation)
		require.NoError(t, uow.Rollback(txCtx))
	})
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(c *Config)
		expectErr bool
	}{
		{"Sqlite with dsn", func(c *Config) { c.Driver = DriverSQLite; c.DSNOverride = "reports.db" }, false},
		{"Sqlite without dsn", func(c *Config) { c.Driver = DriverSQLite }, true},
		{"Postgres fields", func(c *Config) { c.Host = "db"; c.Username = "u"; c.Database = "reports" }, false},
		{"Postgres missing host", func(c *Config) { c.Username = "u"; c.Database = "reports" }, true},
		{"Postgres dsn override", func(c *Config) { c.DSNOverride = "postgres://u@db/reports" }, false},
		{"Bad ssl mode", func(c *Config) { c.Host = "db"; c.Username = "u"; c.Database = "r"; c.SSLMode = "maybe" }, true},
		{"Unknown driver", func(c *Config) { c.Driver = "mysql" }, true},
		{"Bad sql log level", func(c *Config) { c.DSNOverride = "x"; c.LogLevel = "trace" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
