package persistence

import (
	"context"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
)

// ReportRepository persists materialized reports and their transaction links
type ReportRepository interface {
	// Create inserts the report and sets its ID
	//
	// Possible errors:
	// - ErrForeignKeyViolation: If the owning user does not exist
	// - ErrNullConstraintViolation: If a required column is missing
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, report *entity.TransactionReport) error

	// GetByID re-reads a report
	//
	// Possible errors:
	// - ErrReportNotFound: If the report does not exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.TransactionReport, error)

	// LinkTransactions inserts one relation row per transaction ID. An empty list is a no-op.
	//
	// Possible errors:
	// - ErrForeignKeyViolation: If the report or a transaction does not exist
	// - ErrDatabaseConnection: If database connection fails
	LinkTransactions(ctx context.Context, reportID uint64, transactionIDs []uint64) error

	// CountRelations returns how many transactions are linked to the report
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CountRelations(ctx context.Context, reportID uint64) (int64, error)
}
