package transaction

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	mockcache "github.com/amirhossein-jamali/transaction-report-service/mocks/port/cache"
	mockcore "github.com/amirhossein-jamali/transaction-report-service/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/transaction-report-service/mocks/port/persistence"
)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestTypeRegistry_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache hit skips the store", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)
		mockCache.EXPECT().Get(mock.Anything, "tt_id:deposit").Return("7", true, nil)

		id, err := NewTypeRegistry(mockCache, mockUoW, newQuietLogger(t)).ResolveOrCreate(ctx, "deposit")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), id)
		mockUoW.AssertNotCalled(t, "GetTransactionTypeRepository", mock.Anything)
	})

	t.Run("Existing row populates cache", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)
		mockRepo := mockpersistence.NewMockTransactionTypeRepository(t)

		mockCache.EXPECT().Get(mock.Anything, "tt_id:deposit").Return("", false, nil)
		mockUoW.EXPECT().GetTransactionTypeRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().GetByName(mock.Anything, "deposit").Return(&entity.TransactionType{ID: 3, Name: "deposit"}, nil)
		mockCache.EXPECT().Set(mock.Anything, "tt_id:deposit", "3").Return(nil)

		id, err := NewTypeRegistry(mockCache, mockUoW, newQuietLogger(t)).ResolveOrCreate(ctx, "deposit")

		require.NoError(t, err)
		assert.Equal(t, uint64(3), id)
	})

	t.Run("Missing row is created", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)
		mockRepo := mockpersistence.NewMockTransactionTypeRepository(t)

		mockCache.EXPECT().Get(mock.Anything, "tt_id:withdrawal").Return("", false, nil)
		mockUoW.EXPECT().GetTransactionTypeRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().GetByName(mock.Anything, "withdrawal").Return(nil, errs.ErrTransactionTypeNotFound)
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, tt *entity.TransactionType) error {
				tt.ID = 9
				return nil
			})
		mockCache.EXPECT().Set(mock.Anything, "tt_id:withdrawal", "9").Return(nil)

		id, err := NewTypeRegistry(mockCache, mockUoW, newQuietLogger(t)).ResolveOrCreate(ctx, "withdrawal")

		require.NoError(t, err)
		assert.Equal(t, uint64(9), id)
	})

	t.Run("Lost insert race re-reads the row", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)
		mockRepo := mockpersistence.NewMockTransactionTypeRepository(t)

		mockCache.EXPECT().Get(mock.Anything, "tt_id:deposit").Return("", false, nil)
		mockUoW.EXPECT().GetTransactionTypeRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().GetByName(mock.Anything, "deposit").Return(nil, errs.ErrTransactionTypeNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrUniqueViolation)
		mockRepo.EXPECT().GetByName(mock.Anything, "deposit").Return(&entity.TransactionType{ID: 4, Name: "deposit"}, nil).Once()
		mockCache.EXPECT().Set(mock.Anything, "tt_id:deposit", "4").Return(nil)

		id, err := NewTypeRegistry(mockCache, mockUoW, newQuietLogger(t)).ResolveOrCreate(ctx, "deposit")

		require.NoError(t, err)
		assert.Equal(t, uint64(4), id)
	})

	t.Run("Malformed cached id falls back to the store", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)
		mockRepo := mockpersistence.NewMockTransactionTypeRepository(t)

		mockCache.EXPECT().Get(mock.Anything, "tt_id:deposit").Return("not-a-number", true, nil)
		mockUoW.EXPECT().GetTransactionTypeRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().GetByName(mock.Anything, "deposit").Return(&entity.TransactionType{ID: 1, Name: "deposit"}, nil)
		mockCache.EXPECT().Set(mock.Anything, "tt_id:deposit", "1").Return(nil)

		id, err := NewTypeRegistry(mockCache, mockUoW, newQuietLogger(t)).ResolveOrCreate(ctx, "deposit")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
	})

	t.Run("Empty name is a validation error", func(t *testing.T) {
		_, err := NewTypeRegistry(mockcache.NewMockCache(t), mockpersistence.NewMockUnitOfWork(t), newQuietLogger(t)).ResolveOrCreate(ctx, "  ")

		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Cache failure propagates", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		cacheErr := fmt.Errorf("%w: connection refused", errs.ErrCacheUnavailable)
		mockCache.EXPECT().Get(mock.Anything, "tt_id:deposit").Return("", false, cacheErr)

		_, err := NewTypeRegistry(mockCache, mockpersistence.NewMockUnitOfWork(t), newQuietLogger(t)).ResolveOrCreate(ctx, "deposit")

		assert.ErrorIs(t, err, errs.ErrCacheUnavailable)
	})
}
