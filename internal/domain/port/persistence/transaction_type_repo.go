package persistence

import (
	"context"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
)

// TransactionTypeRepository persists the name to id mapping for transaction types
type TransactionTypeRepository interface {
	// GetByName selects the type with the exact name
	//
	// Possible errors:
	// - ErrTransactionTypeNotFound: If no row carries the name
	// - ErrDatabaseConnection: If database connection fails
	GetByName(ctx context.Context, name string) (*entity.TransactionType, error)

	// Create inserts a new type and sets its ID
	//
	// Possible errors:
	// - ErrUniqueViolation: If another writer inserted the same name first
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transactionType *entity.TransactionType) error
}
