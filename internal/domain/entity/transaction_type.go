package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
)

// TransactionTypeLiteral is the closed set of type names accepted at the API boundary
type TransactionTypeLiteral string

const (
	// TransactionTypeDeposit credits the user
	TransactionTypeDeposit TransactionTypeLiteral = "deposit"
	// TransactionTypeWithdrawal debits the user
	TransactionTypeWithdrawal TransactionTypeLiteral = "withdrawal"
)

// AllTransactionTypes lists every literal, in seeding order
var AllTransactionTypes = []TransactionTypeLiteral{
	TransactionTypeDeposit,
	TransactionTypeWithdrawal,
}

// IsValid checks the literal against the closed set
func (t TransactionTypeLiteral) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal:
		return true
	default:
		return false
	}
}

// String returns the stored type name
func (t TransactionTypeLiteral) String() string {
	return string(t)
}

// ParseTransactionTypeLiteral normalizes and validates a raw type name
func ParseTransactionTypeLiteral(raw string) (TransactionTypeLiteral, error) {
	literal := TransactionTypeLiteral(strings.ToLower(strings.TrimSpace(raw)))
	if !literal.IsValid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, raw)
	}
	return literal, nil
}

// TransactionType is the persisted name/id pair. Rows are created lazily and never deleted.
type TransactionType struct {
	ID   uint64
	Name string
}
