package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id uint64) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, db.Create(&model.User{
		ID:        id,
		Name:      fmt.Sprintf("user_%d", id),
		Password:  []byte("hash"),
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)
}

func seedType(t *testing.T, db *gorm.DB, name string) uint64 {
	t.Helper()
	typeModel := model.TransactionType{Name: name}
	require.NoError(t, db.Create(&typeModel).Error)
	return typeModel.ID
}
