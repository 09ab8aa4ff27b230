package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation              = 4000
	CodeInvalidUserID           = 4001
	CodeInvalidTransactionType  = 4002
	CodeInvalidDateRange        = 4003
	CodeInvalidTimestamp        = 4004
	CodeForeignKeyViolation     = 4220
	CodeNullConstraintViolation = 4221
	CodeUserNotFound            = 4040
	CodeReportNotFound          = 4041
	CodeNotFound                = 4049
	CodeDuplicateUser           = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
	CodeCacheUnavailable   = 5002
)

// Base error types
var (
	// ErrValidation is the parent of every malformed-input error
	ErrValidation = errors.New("validation error")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = fmt.Errorf("%w: user ID must be positive", ErrValidation)

	// ErrInvalidTransactionType is returned for anything other than deposit or withdrawal
	ErrInvalidTransactionType = fmt.Errorf("%w: unknown transaction type", ErrValidation)

	// ErrInvalidDateRange is returned when the report window ends before it starts
	ErrInvalidDateRange = fmt.Errorf("%w: date_end must not be before date_start", ErrValidation)

	// ErrInvalidTimestamp is returned when a date cannot be parsed
	ErrInvalidTimestamp = fmt.Errorf("%w: unparseable timestamp", ErrValidation)

	// ErrEmptyTypeName is returned when a transaction type name is blank
	ErrEmptyTypeName = fmt.Errorf("%w: transaction type name cannot be empty", ErrValidation)

	// ErrInvalidUserName is returned for a blank or oversized display name
	ErrInvalidUserName = fmt.Errorf("%w: user name must be 1-100 characters", ErrValidation)

	// ErrDuplicateUser is returned when creating a user whose ID or name is taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrForeignKeyViolation is returned when a row references a missing user, type or report
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrNullConstraintViolation is returned when a required column is missing
	ErrNullConstraintViolation = errors.New("null constraint violation")

	// ErrUniqueViolation is returned when a unique index rejects an insert
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionTypeNotFound is returned when no type carries the requested name
	ErrTransactionTypeNotFound = errors.New("transaction type not found")

	// ErrReportNotFound is returned when a freshly created report cannot be re-read
	ErrReportNotFound = errors.New("transaction report not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrCacheUnavailable is returned when the cache backend fails
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrInvalidDateRange):
		return CodeInvalidDateRange
	case errors.Is(err, ErrInvalidTimestamp):
		return CodeInvalidTimestamp
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrForeignKeyViolation):
		return CodeForeignKeyViolation
	case errors.Is(err, ErrNullConstraintViolation):
		return CodeNullConstraintViolation
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrReportNotFound):
		return CodeReportNotFound
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrTransactionTypeNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrCacheUnavailable):
		return CodeCacheUnavailable
	default:
		return CodeInternalServer
	}
}

// TransactionError describes a failed attempt to record a user transaction
type TransactionError struct {
	UserID          uint64
	Amount          int64
	TransactionType string
	Reason          string
	Err             error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction error for user %d (amount: %d, type: %s): %s - %v",
		e.UserID, e.Amount, e.TransactionType, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "transaction_error",
		"user_id":          e.UserID,
		"amount":           e.Amount,
		"transaction_type": e.TransactionType,
		"reason":           e.Reason,
		"error":            e.Err.Error(),
		"error_code":       ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(userID uint64, amount int64, transactionType, reason string, err error) error {
	return &TransactionError{
		UserID:          userID,
		Amount:          amount,
		TransactionType: transactionType,
		Reason:          reason,
		Err:             err,
	}
}

// ReportError describes a failure while answering or materializing a report window
type ReportError struct {
	UserID    uint64
	DateStart time.Time
	DateEnd   time.Time
	Stage     string
	Err       error
}

// Error implements the error interface for ReportError
func (e *ReportError) Error() string {
	return fmt.Sprintf("report %s failed for user %d [%s, %s]: %v",
		e.Stage, e.UserID, e.DateStart.Format(time.RFC3339), e.DateEnd.Format(time.RFC3339), e.Err)
}

// Unwrap returns the underlying error
func (e *ReportError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReportError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "report_error",
		"user_id":    e.UserID,
		"date_start": e.DateStart,
		"date_end":   e.DateEnd,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewReportError creates a detailed report error for the given stage (query, materialize, cache)
func NewReportError(userID uint64, start, end time.Time, stage string, err error) error {
	return &ReportError{
		UserID:    userID,
		DateStart: start,
		DateEnd:   end,
		Stage:     stage,
		Err:       err,
	}
}

// IsValidationError checks if the error stems from malformed input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsIntegrityError checks if the error is a store-level constraint failure
func IsIntegrityError(err error) bool {
	return errors.Is(err, ErrForeignKeyViolation) ||
		errors.Is(err, ErrNullConstraintViolation) ||
		errors.Is(err, ErrUniqueViolation)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReportNotFound) ||
		errors.Is(err, ErrTransactionTypeNotFound)
}
