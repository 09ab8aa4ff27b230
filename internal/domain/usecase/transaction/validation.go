package transaction

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
)

// TransactionValidator checks use case input before any store or cache access
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateCreate validates the fields of a new transaction. Amount sign is not checked.
func (v *TransactionValidator) ValidateCreate(userID uint64, transactionType entity.TransactionTypeLiteral) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	if !transactionType.IsValid() {
		return fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, string(transactionType))
	}
	return nil
}

// ValidateReport builds the normalized report window
func (v *TransactionValidator) ValidateReport(userID uint64, start, end time.Time) (entity.ReportWindow, error) {
	return entity.NewReportWindow(userID, start, end)
}
