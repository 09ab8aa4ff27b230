package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
)

// UserTransactionRepository stores the immutable transaction ledger
type UserTransactionRepository interface {
	// Create inserts the transaction and sets its ID. No amount-sign validation is done.
	//
	// Possible errors:
	// - ErrForeignKeyViolation: If the user or transaction type does not exist
	// - ErrNullConstraintViolation: If a required column is missing
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.UserTransaction) error

	// FindByUserAndRange returns the user's transactions with start <= date <= end,
	// ordered by date then id. A user with no rows (or no account) yields an empty slice.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*entity.UserTransaction, error)
}
