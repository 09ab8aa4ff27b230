package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/transaction-report-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionTypeLiteral(t *testing.T) {
	testCases := []struct {
		input       string
		expected    TransactionTypeLiteral
		expectError bool
	}{
		{"deposit", TransactionTypeDeposit, false},
		{"withdrawal", TransactionTypeWithdrawal, false},
		{" Deposit ", TransactionTypeDeposit, false},
		{"refund", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			literal, err := ParseTransactionTypeLiteral(tc.input)
			if tc.expectError {
				assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
				assert.True(t, errs.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, literal)
			assert.True(t, literal.IsValid())
		})
	}
}

func TestNewUserTransaction(t *testing.T) {
	local := time.Date(2024, 6, 1, 15, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(local).Maybe()

	t.Run("Stamps current time in UTC", func(t *testing.T) {
		tx, err := NewUserTransaction(1, -300, 2, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-300), tx.Amount)
		assert.Equal(t, time.UTC, tx.Date.Location())
		assert.True(t, tx.Date.Equal(local))
	})

	t.Run("Date is stored at microsecond precision", func(t *testing.T) {
		fine := coremocks.NewMockTimeProvider(t)
		fine.EXPECT().Now().Return(local.Add(1999 * time.Nanosecond))

		tx, err := NewUserTransaction(1, 100, 1, fine)

		require.NoError(t, err)
		assert.True(t, tx.Date.Equal(local.Add(time.Microsecond)))
	})

	t.Run("Zero user is rejected", func(t *testing.T) {
		tx, err := NewUserTransaction(0, 100, 1, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, tx)
	})
}

func TestToOutSlice(t *testing.T) {
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Empty input yields empty, non-nil slice", func(t *testing.T) {
		out := ToOutSlice(nil)
		assert.NotNil(t, out)
		assert.Len(t, out, 0)
	})

	t.Run("Fields are projected", func(t *testing.T) {
		out := ToOutSlice([]*UserTransaction{
			{ID: 10, UserID: 1, Amount: 100, TransactionTypeID: 1, Date: date},
		})

		require.Len(t, out, 1)
		assert.Equal(t, TransactionOut{UserID: 1, Amount: 100, TransactionTypeID: 1, Date: date}, out[0])
	})
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(1, "user_1", []byte("hash"), mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, int64(0), user.Balance)
		assert.False(t, user.IsVerified)
		assert.False(t, user.HasVerificationVector())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		user, err := NewUser(0, "user_0", nil, mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})

	t.Run("Blank name should return error", func(t *testing.T) {
		user, err := NewUser(1, "   ", nil, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserName)
		assert.Nil(t, user)
	})
}
