package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
)

// UserTransaction is an immutable ledger row. Amount sign is not interpreted.
type UserTransaction struct {
	ID                uint64
	UserID            uint64
	Amount            int64
	TransactionTypeID uint64
	Date              time.Time
}

// NewUserTransaction stamps the transaction with the provider's current time in UTC
func NewUserTransaction(userID uint64, amount int64, typeID uint64, timeProvider coreport.TimeProvider) (*UserTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	return &UserTransaction{
		UserID:            userID,
		Amount:            amount,
		TransactionTypeID: typeID,
		Date:              timeProvider.Now().UTC().Truncate(TimestampResolution),
	}, nil
}

// ToOut projects the transaction onto its transport shape
func (t *UserTransaction) ToOut() TransactionOut {
	return TransactionOut{
		UserID:            t.UserID,
		Amount:            t.Amount,
		TransactionTypeID: t.TransactionTypeID,
		Date:              t.Date,
	}
}
