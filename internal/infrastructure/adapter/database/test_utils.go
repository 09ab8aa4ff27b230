package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestDBManager provides an isolated, migrated in-memory sqlite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database, migrates it and
// registers cleanup with t
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.DSNOverride = fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	config.MaxOpenConns = 1
	config.MaxIdleConns = 1
	config.ConnMaxIdleTime = 0
	config.ConnMaxLifetime = 0
	config.QueryTimeout = 5 * time.Second
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.MonitorInterval = 0

	manager := NewManager(config, logger, timeProvider)
	ctx := context.Background()

	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the underlying gorm handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// CreateTestUser inserts a user with the given id and a name derived from it
func (m *TestDBManager) CreateTestUser(t *testing.T, id uint64) {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		ID:        id,
		Name:      fmt.Sprintf("user_%d", id),
		Password:  []byte("test"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CountRows counts the rows of the table for the given model
func (m *TestDBManager) CountRows(t *testing.T, table any) int64 {
	t.Helper()

	var count int64
	if err := m.DB().Model(table).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}
