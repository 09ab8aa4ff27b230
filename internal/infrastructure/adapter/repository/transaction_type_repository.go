package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionTypeRepository implements persistence.TransactionTypeRepository using GORM
type TransactionTypeRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionTypeRepository creates a new TransactionTypeRepository instance
func NewTransactionTypeRepository(db *gorm.DB, logger coreport.Logger) *TransactionTypeRepository {
	return &TransactionTypeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByName selects the type row with the given name
func (r *TransactionTypeRepository) GetByName(ctx context.Context, name string) (*entity.TransactionType, error) {
	var typeModel model.TransactionType
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&typeModel)

	if result.Error != nil {
		err := r.errorClassifier.Translate(result.Error, errs.ErrTransactionTypeNotFound)
		if !errors.Is(err, errs.ErrTransactionTypeNotFound) {
			r.logger.Error("Failed to get transaction type", map[string]any{
				"name":  name,
				"error": result.Error.Error(),
			})
		}
		return nil, err
	}

	return &entity.TransactionType{ID: typeModel.ID, Name: typeModel.Name}, nil
}

// Create inserts the type and writes the generated ID back to the entity
func (r *TransactionTypeRepository) Create(ctx context.Context, transactionType *entity.TransactionType) error {
	typeModel := model.TransactionType{Name: transactionType.Name}

	result := r.db.WithContext(ctx).Create(&typeModel)
	if result.Error != nil {
		err := r.errorClassifier.Translate(result.Error, errs.ErrNotFound)
		r.logger.Warn("Failed to create transaction type", map[string]any{
			"name":  transactionType.Name,
			"error": result.Error.Error(),
		})
		return err
	}

	transactionType.ID = typeModel.ID
	r.logger.Info("Transaction type created", map[string]any{
		"name": typeModel.Name,
		"id":   typeModel.ID,
	})
	return nil
}
