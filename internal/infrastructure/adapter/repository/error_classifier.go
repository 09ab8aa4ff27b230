package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	NotNullError      ErrorType = "not_null"
	NotFoundError     ErrorType = "not_found"
	TransientError    ErrorType = "transient"
	ConnectionError   ErrorType = "connection"
)

// ErrorClassifier maps gorm and driver errors from postgres and sqlite onto domain errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsNotNullError(err):
		return NotNullError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return ""
	}
}

// Translate converts err into a domain error, keeping the driver message.
// notFound is returned for gorm.ErrRecordNotFound.
func (c *ErrorClassifier) Translate(err error, notFound error) error {
	if err == nil {
		return nil
	}

	switch c.Classify(err) {
	case NotFoundError:
		return notFound
	case ForeignKeyError:
		return fmt.Errorf("%w: %s", errs.ErrForeignKeyViolation, err.Error())
	case NotNullError:
		return fmt.Errorf("%w: %s", errs.ErrNullConstraintViolation, err.Error())
	case DuplicateKeyError:
		return fmt.Errorf("%w: %s", errs.ErrUniqueViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "SQLSTATE 23505")
}

// IsForeignKeyError checks if the error is a referential integrity failure
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "violates foreign key") ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed") ||
		strings.Contains(err.Error(), "SQLSTATE 23503")
}

// IsNotNullError checks if a required column was missing
func (c *ErrorClassifier) IsNotNullError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "violates not-null") ||
		strings.Contains(err.Error(), "NOT NULL constraint failed") ||
		strings.Contains(err.Error(), "SQLSTATE 23502")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "connection reset") ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "EOF") ||
		strings.Contains(err.Error(), "server closed") ||
		strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "database is locked")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "connection") ||
		strings.Contains(err.Error(), "dial") ||
		strings.Contains(err.Error(), "network") ||
		c.IsTransientError(err)
}
