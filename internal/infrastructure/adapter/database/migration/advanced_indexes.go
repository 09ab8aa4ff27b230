package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates indexes that only PostgreSQL supports
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []struct {
		name string
		sql  string
	}{
		{
			// transactions are append-only and arrive roughly in date order
			name: "idx_user_transactions_date_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_user_transactions_date_brin
				ON user_transactions USING BRIN (date)
				WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_report_transaction_relations_report_tx",
			sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_report_transaction_relations_report_tx
				ON report_transaction_relations (report_id, transaction_id)`,
		},
	}

	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL table settings. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []string{
		// rows are never updated, so pages can be packed full
		`ALTER TABLE user_transactions SET (fillfactor = 100)`,
		`ALTER TABLE user_transactions ALTER COLUMN user_id SET STATISTICS 1000`,
	}

	for _, sql := range tweaks {
		if err := m.db.WithContext(ctx).Exec(sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"sql":   sql,
				"error": err.Error(),
			})
		}
	}
}
