package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserTransactionRepository implements persistence.UserTransactionRepository using GORM
type UserTransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserTransactionRepository creates a new UserTransactionRepository instance
func NewUserTransactionRepository(db *gorm.DB, logger coreport.Logger) *UserTransactionRepository {
	return &UserTransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *UserTransactionRepository) entityToModel(transaction *entity.UserTransaction) model.UserTransaction {
	return model.UserTransaction{
		ID:                transaction.ID,
		UserID:            transaction.UserID,
		Amount:            transaction.Amount,
		TransactionTypeID: transaction.TransactionTypeID,
		Date:              transaction.Date.UTC(),
	}
}

// modelToEntity converts a transaction model to an entity
func (r *UserTransactionRepository) modelToEntity(m *model.UserTransaction) *entity.UserTransaction {
	return &entity.UserTransaction{
		ID:                m.ID,
		UserID:            m.UserID,
		Amount:            m.Amount,
		TransactionTypeID: m.TransactionTypeID,
		Date:              m.Date.UTC(),
	}
}

// Create inserts the transaction. Constraint failures come back as domain errors.
func (r *UserTransactionRepository) Create(ctx context.Context, transaction *entity.UserTransaction) error {
	transactionModel := r.entityToModel(transaction)

	db := r.db.WithContext(ctx).Omit(clause.Associations)
	if transaction.Date.IsZero() {
		// NULL reaches the not-null constraint instead of a zero timestamp
		db = db.Omit("Date")
	}
	if transaction.UserID == 0 {
		db = db.Omit("UserID")
	}
	if transaction.TransactionTypeID == 0 {
		db = db.Omit("TransactionTypeID")
	}

	result := db.Create(&transactionModel)
	if result.Error != nil {
		err := r.errorClassifier.Translate(result.Error, errs.ErrNotFound)
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id":             transaction.UserID,
			"transaction_type_id": transaction.TransactionTypeID,
			"error":               result.Error.Error(),
		})
		return err
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Transaction created", map[string]any{
		"id":      transactionModel.ID,
		"user_id": transactionModel.UserID,
		"amount":  transactionModel.Amount,
	})
	return nil
}

// FindByUserAndRange returns transactions with start <= date <= end
func (r *UserTransactionRepository) FindByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*entity.UserTransaction, error) {
	var rows []model.UserTransaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start.UTC(), end.UTC()).
		Order("date ASC").
		Order("id ASC").
		Find(&rows)

	if result.Error != nil {
		r.logger.Error("Failed to query transactions by range", map[string]any{
			"user_id": userID,
			"start":   start,
			"end":     end,
			"error":   result.Error.Error(),
		})
		return nil, r.errorClassifier.Translate(result.Error, errs.ErrNotFound)
	}

	transactions := make([]*entity.UserTransaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, r.modelToEntity(&rows[i]))
	}

	r.logger.Debug("Transactions queried by range", map[string]any{
		"user_id": userID,
		"count":   len(transactions),
	})
	return transactions, nil
}
