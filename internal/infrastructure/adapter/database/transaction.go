package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// ErrNoTransaction is returned by Commit and Rollback when ctx carries no transaction
var ErrNoTransaction = errors.New("no transaction found in context")

// UnitOfWork implements the unit of work pattern for database transactions.
// The open transaction travels in the context returned by Begin.
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("%w: failed to begin transaction: %s", errs.ErrDatabaseConnection, tx.Error.Error())
	}

	u.logger.Debug("Database transaction started", nil)
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return ErrNoTransaction
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: failed to commit transaction: %s", errs.ErrDatabaseConnection, err.Error())
	}

	u.logger.Debug("Database transaction committed", nil)
	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return ErrNoTransaction
	}

	err := tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) || errors.Is(err, gorm.ErrInvalidTransaction) {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.logger.Debug("Database transaction rolled back", nil)
	return nil
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionTypeRepository returns a type repository in the current transaction
func (u *UnitOfWork) GetTransactionTypeRepository(ctx context.Context) persistence.TransactionTypeRepository {
	return repository.NewTransactionTypeRepository(u.getDbFromContext(ctx), u.logger)
}

// GetUserTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetUserTransactionRepository(ctx context.Context) persistence.UserTransactionRepository {
	return repository.NewUserTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetReportRepository returns a report repository in the current transaction
func (u *UnitOfWork) GetReportRepository(ctx context.Context) persistence.ReportRepository {
	return repository.NewReportRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
