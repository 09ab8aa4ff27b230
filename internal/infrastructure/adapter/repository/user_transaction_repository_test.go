package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTransactionRepository_Create(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		tx          entity.UserTransaction
		seedUser    bool
		expectedErr error
	}{
		{
			name:     "Valid transaction",
			tx:       entity.UserTransaction{UserID: 1, Amount: 100, Date: date},
			seedUser: true,
		},
		{
			name:        "Unknown user",
			tx:          entity.UserTransaction{UserID: 99, Amount: 100, Date: date},
			seedUser:    true,
			expectedErr: errs.ErrForeignKeyViolation,
		},
		{
			name:        "Missing date",
			tx:          entity.UserTransaction{UserID: 1, Amount: 100},
			seedUser:    true,
			expectedErr: errs.ErrNullConstraintViolation,
		},
		{
			name:     "Negative amount is stored as-is",
			tx:       entity.UserTransaction{UserID: 1, Amount: -300, Date: date},
			seedUser: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			if tc.seedUser {
				seedUser(t, db, 1)
			}
			typeID := seedType(t, db, "deposit")
			repo := NewUserTransactionRepository(db, logger.NewNoopLogger())

			tx := tc.tx
			tx.TransactionTypeID = typeID
			err := repo.Create(ctx, &tx)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.True(t, errs.IsIntegrityError(err))
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, tx.ID)
		})
	}
}

func TestUserTransactionRepository_FindByUserAndRange(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedUser(t, db, 1)
	seedUser(t, db, 2)
	typeID := seedType(t, db, "deposit")
	repo := NewUserTransactionRepository(db, logger.NewNoopLogger())

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	rows := []entity.UserTransaction{
		{UserID: 1, Amount: 30, Date: day(3)},
		{UserID: 1, Amount: 10, Date: day(1)},
		{UserID: 1, Amount: 20, Date: day(2)},
		{UserID: 1, Amount: 21, Date: day(2)},
		{UserID: 1, Amount: 50, Date: day(5)},
		{UserID: 2, Amount: 99, Date: day(2)},
	}
	for i := range rows {
		rows[i].TransactionTypeID = typeID
		require.NoError(t, repo.Create(ctx, &rows[i]))
	}

	t.Run("Bounds are inclusive and ordered", func(t *testing.T) {
		got, err := repo.FindByUserAndRange(ctx, 1, day(1), day(3))
		require.NoError(t, err)

		amounts := make([]int64, 0, len(got))
		for _, tx := range got {
			amounts = append(amounts, tx.Amount)
		}
		assert.Equal(t, []int64{10, 20, 21, 30}, amounts)
	})

	t.Run("Single instant range", func(t *testing.T) {
		got, err := repo.FindByUserAndRange(ctx, 1, day(5), day(5))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(50), got[0].Amount)
	})

	t.Run("Unknown user yields empty result", func(t *testing.T) {
		got, err := repo.FindByUserAndRange(ctx, 7, day(1), day(31))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Other users are excluded", func(t *testing.T) {
		got, err := repo.FindByUserAndRange(ctx, 2, day(1), day(31))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint64(2), got[0].UserID)
	})
}
