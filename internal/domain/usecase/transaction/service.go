package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	cacheport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/usecase"
)

// Service ties the type registry, the transaction store and the report cache together
type Service struct {
	uow          persistence.UnitOfWork
	registry     *TypeRegistry
	reports      *ReportCache
	validator    *TransactionValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	uow persistence.UnitOfWork,
	cache cacheport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		registry:     NewTypeRegistry(cache, uow, logger),
		reports:      NewReportCache(cache, NewReportMaterializer(uow, logger), logger),
		validator:    NewTransactionValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// CreateTransaction resolves the type id, stamps the current time and stores the transaction
func (s *Service) CreateTransaction(
	ctx context.Context,
	userID uint64,
	amount int64,
	transactionType entity.TransactionTypeLiteral,
) (*entity.UserTransaction, error) {
	if err := s.validator.ValidateCreate(userID, transactionType); err != nil {
		return nil, err
	}

	typeID, err := s.registry.ResolveOrCreate(ctx, transactionType.String())
	if err != nil {
		return nil, s.transactionFailed(userID, amount, transactionType, "resolve type", err)
	}

	transaction, err := entity.NewUserTransaction(userID, amount, typeID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetUserTransactionRepository(ctx).Create(ctx, transaction); err != nil {
		return nil, s.transactionFailed(userID, amount, transactionType, "store", err)
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id":   transaction.ID,
		"user_id":          userID,
		"amount":           amount,
		"transaction_type": transactionType.String(),
	})
	return transaction, nil
}

// GetTransactionsForReport answers the window from cache, or computes, materializes and caches it
func (s *Service) GetTransactionsForReport(ctx context.Context, userID uint64, start, end time.Time) ([]entity.TransactionOut, error) {
	window, err := s.validator.ValidateReport(userID, start, end)
	if err != nil {
		return nil, err
	}

	out, err := s.reports.GetOrCompute(ctx, window, s.findTransactions)
	if err != nil {
		var reportErr *errs.ReportError
		if errors.As(err, &reportErr) {
			s.logger.Error("Report request failed", reportErr.LogFields())
		}
		return nil, err
	}
	return out, nil
}

// findTransactions is the ComputeFunc backing the report cache
func (s *Service) findTransactions(ctx context.Context, window entity.ReportWindow) ([]*entity.UserTransaction, error) {
	return s.uow.GetUserTransactionRepository(ctx).FindByUserAndRange(ctx, window.UserID, window.DateStart, window.DateEnd)
}

func (s *Service) transactionFailed(userID uint64, amount int64, transactionType entity.TransactionTypeLiteral, reason string, err error) error {
	txErr := errs.NewTransactionError(userID, amount, transactionType.String(), reason, err)
	if fielded, ok := txErr.(*errs.TransactionError); ok {
		s.logger.Warn("Transaction creation failed", fielded.LogFields())
	}
	return txErr
}
