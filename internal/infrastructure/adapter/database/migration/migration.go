package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"

	dialectPostgres = "postgres"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion and seeds the transaction types
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return SeedTransactionTypes(ctx, m.db)
	}

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(ctx, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if m.db.Dialector.Name() == dialectPostgres {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
			return err
		}
		m.advancedIndexMgr.CreatePerformanceTweaks(ctx)
	}

	if err := SeedTransactionTypes(ctx, m.db); err != nil {
		m.logger.Error("Failed to seed transaction types", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Report schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	appliedAt := time.Now().UTC()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	}

	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}).Error
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		fallthrough
	case "1.0.0":
		if err := m.createReportLookupIndex(ctx); err != nil {
			return err
		}
	}

	return nil
}

// createReportLookupIndex adds the (user, window) lookup index on reports introduced in 1.1.0
func (m *MigrationManager) createReportLookupIndex(ctx context.Context) error {
	m.logger.Info("Creating report lookup index", nil)

	return m.db.WithContext(ctx).Exec(`
		CREATE INDEX IF NOT EXISTS idx_transaction_reports_window
		ON transaction_reports (user_id, date_start, date_end)
	`).Error
}
