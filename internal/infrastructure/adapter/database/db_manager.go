package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/repository"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorClassifier   *repository.ErrorClassifier
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:          config,
		logger:          logger,
		errorClassifier: repository.NewErrorClassifier(),
		timeProvider:    timeProvider,
	}
}

// Connect opens the pool, retrying transient failures, and starts pool monitoring
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"target": m.config.Target(),
	})

	retryCfg := DefaultRetryConfig()
	retryCfg.MaxRetries = m.config.RetryAttempts
	if m.config.RetryDelay > 0 {
		retryCfg.RetryInterval = m.config.RetryDelay
		retryCfg.MaxInterval = 8 * m.config.RetryDelay
	}

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, retryCfg, func(ctx context.Context) error {
		db, err := m.open()
		if err != nil {
			return err
		}
		if err := m.ping(ctx, db); err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return err
		}
		gormDB = db
		return nil
	}, m.errorClassifier, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	if m.config.Driver == DriverSQLite {
		// sqlite serializes writers; a single connection avoids "database is locked"
		sqlDB.SetMaxOpenConns(1)
		if err := gormDB.WithContext(ctx).Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	if m.config.MonitorInterval > 0 {
		m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger, m.config.QueryTimeout)
		m.connectionMonitor.Start(m.config.MonitorInterval)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"target":         m.config.Target(),
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	return m.db, nil
}

func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return m.timeProvider.Now().UTC()
		},
	}

	switch m.config.Driver {
	case DriverPostgres:
		gormConfig.PrepareStmt = true
		return gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
	case DriverSQLite:
		return gorm.Open(sqlite.Open(m.config.DSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

func (m *Manager) ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return fmt.Errorf("database is not connected")
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database is not connected")
	}
	return m.ping(ctx, m.db)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// PoolMetrics returns the last pool snapshot, or false when monitoring is disabled
func (m *Manager) PoolMetrics() (ConnectionPoolMetrics, bool) {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}, false
	}
	return m.connectionMonitor.GetMetrics(), true
}

// Close stops monitoring and closes the pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}
