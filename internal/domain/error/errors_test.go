package error

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestValidationErrorsWrapBase(t *testing.T) {
	validationErrors := []error{
		ErrInvalidUserID,
		ErrInvalidTransactionType,
		ErrInvalidDateRange,
		ErrInvalidTimestamp,
		ErrEmptyTypeName,
	}

	for _, err := range validationErrors {
		if !errors.Is(err, ErrValidation) {
			t.Errorf("errors.Is(%v, ErrValidation) = false, want true", err)
		}
		if !IsValidationError(err) {
			t.Errorf("IsValidationError(%v) = false, want true", err)
		}
	}

	if IsValidationError(ErrForeignKeyViolation) {
		t.Errorf("IsValidationError(ErrForeignKeyViolation) = true, want false")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrValidation, 4000},
		{"InvalidUserID", ErrInvalidUserID, 4001},
		{"InvalidTransactionType", ErrInvalidTransactionType, 4002},
		{"InvalidDateRange", ErrInvalidDateRange, 4003},
		{"InvalidTimestamp", ErrInvalidTimestamp, 4004},
		{"EmptyTypeName", ErrEmptyTypeName, 4000},
		{"ForeignKeyViolation", ErrForeignKeyViolation, 4220},
		{"NullConstraintViolation", ErrNullConstraintViolation, 4221},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"ReportNotFound", ErrReportNotFound, 4041},
		{"TypeNotFound", ErrTransactionTypeNotFound, 4049},
		{"DatabaseConnection", ErrDatabaseConnection, 5001},
		{"CacheUnavailable", ErrCacheUnavailable, 5002},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrForeignKeyViolation), 4220},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestTransactionError(t *testing.T) {
	txErr := &TransactionError{
		UserID:          7,
		Amount:          300,
		TransactionType: "withdrawal",
		Reason:          "insert failed",
		Err:             ErrForeignKeyViolation,
	}

	expected := "transaction error for user 7 (amount: 300, type: withdrawal): insert failed - foreign key violation"
	if txErr.Error() != expected {
		t.Errorf("TransactionError.Error() = %s, want %s", txErr.Error(), expected)
	}

	if !errors.Is(txErr, ErrForeignKeyViolation) {
		t.Errorf("errors.Is(txErr, ErrForeignKeyViolation) = false, want true")
	}

	fields := txErr.LogFields()
	if fields["error_code"] != CodeForeignKeyViolation {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeForeignKeyViolation)
	}
	if fields["transaction_type"] != "withdrawal" {
		t.Errorf("LogFields()[transaction_type] = %v, want withdrawal", fields["transaction_type"])
	}
}

func TestReportError(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2124, 1, 1, 0, 0, 0, 0, time.UTC)

	err := NewReportError(1, start, end, "materialize", ErrReportNotFound)

	expected := "report materialize failed for user 1 [2024-01-01T00:00:00Z, 2124-01-01T00:00:00Z]: transaction report not found"
	if err.Error() != expected {
		t.Errorf("ReportError.Error() = %s, want %s", err.Error(), expected)
	}

	if !IsNotFoundError(err) {
		t.Errorf("IsNotFoundError(reportErr) = false, want true")
	}

	var reportErr *ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("errors.As(err, *ReportError) = false, want true")
	}
	if reportErr.LogFields()["stage"] != "materialize" {
		t.Errorf("LogFields()[stage] = %v, want materialize", reportErr.LogFields()["stage"])
	}
}

func TestIsIntegrityError(t *testing.T) {
	testCases := []struct {
		err      error
		expected bool
	}{
		{ErrForeignKeyViolation, true},
		{ErrNullConstraintViolation, true},
		{fmt.Errorf("insert: %w", ErrUniqueViolation), true},
		{ErrReportNotFound, false},
		{ErrValidation, false},
	}

	for _, tc := range testCases {
		if got := IsIntegrityError(tc.err); got != tc.expected {
			t.Errorf("IsIntegrityError(%v) = %v, want %v", tc.err, got, tc.expected)
		}
	}
}
