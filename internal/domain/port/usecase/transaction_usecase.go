package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
)

// TransactionUseCase defines the operations exposed to the HTTP layer
type TransactionUseCase interface {
	// CreateTransaction resolves the type id, stamps the current time and stores the transaction.
	// This is the method behind POST /api/transactions/create/
	CreateTransaction(ctx context.Context, userID uint64, amount int64, transactionType entity.TransactionTypeLiteral) (*entity.UserTransaction, error)

	// GetTransactionsForReport answers the window from cache, or computes, materializes
	// and caches it on a miss.
	// This is the method behind POST /api/transactions/report/
	GetTransactionsForReport(ctx context.Context, userID uint64, start, end time.Time) ([]entity.TransactionOut, error)
}
