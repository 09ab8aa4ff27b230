package migration

import (
	"context"
	"fmt"
	"testing"

	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrationManager_MigrateAll(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	t.Run("Fresh database reaches current version", func(t *testing.T) {
		require.NoError(t, mgr.MigrateAll(ctx))

		version, err := mgr.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, CurrentSchemaVersion, version)

		for _, m := range model.AllModels() {
			assert.True(t, db.Migrator().HasTable(m))
		}
		assert.True(t, db.Migrator().HasIndex(&model.TransactionReport{}, "idx_transaction_reports_window"))
		assert.True(t, db.Migrator().HasIndex(&model.UserTransaction{}, "idx_user_transactions_user_date"))
	})

	t.Run("Transaction types are seeded once", func(t *testing.T) {
		require.NoError(t, mgr.MigrateAll(ctx))

		var names []string
		require.NoError(t, db.Model(&model.TransactionType{}).Order("id").Pluck("name", &names).Error)
		assert.Equal(t, []string{"deposit", "withdrawal"}, names)

		var versions int64
		require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&versions).Error)
		assert.Equal(t, int64(1), versions)
	})
}

func TestMigrationManager_GetCurrentVersion_Fresh(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(&model.MigrationVersion{}))
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), nil)

	version, err := mgr.GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Empty(t, version)
}
