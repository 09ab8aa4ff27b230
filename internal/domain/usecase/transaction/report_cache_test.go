package transaction

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/codec"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	mockcache "github.com/amirhossein-jamali/transaction-report-service/mocks/port/cache"
	mockpersistence "github.com/amirhossein-jamali/transaction-report-service/mocks/port/persistence"
)

// expectMaterialize wires a successful report insert into mockUoW
func expectMaterialize(t *testing.T, mockUoW *mockpersistence.MockUnitOfWork, reportID uint64) {
	t.Helper()
	mockRepo := mockpersistence.NewMockReportRepository(t)

	mockUoW.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	})
	mockUoW.EXPECT().GetReportRepository(mock.Anything).Return(mockRepo)
	mockRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, report *entity.TransactionReport) error {
			report.ID = reportID
			return nil
		})
	mockRepo.EXPECT().GetByID(mock.Anything, reportID).Return(&entity.TransactionReport{ID: reportID}, nil)
	mockRepo.EXPECT().LinkTransactions(mock.Anything, reportID, mock.Anything).Return(nil)
	mockUoW.EXPECT().Commit(mock.Anything).Return(nil)
}

func TestReportCache_GetOrCompute(t *testing.T) {
	ctx := context.Background()
	window := testWindow(t)
	key := "report:" + window.CacheKey()
	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	stored := []*entity.UserTransaction{
		{ID: 1, UserID: 1, Amount: 100, TransactionTypeID: 1, Date: date},
		{ID: 2, UserID: 1, Amount: -300, TransactionTypeID: 2, Date: date.Add(time.Hour)},
	}

	t.Run("Hit returns cached payload without computing", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)

		payload, err := codec.EncodeNested(entity.ToOutSlice(stored))
		require.NoError(t, err)
		mockCache.EXPECT().Get(mock.Anything, key).Return(payload, true, nil)

		computed := false
		rc := NewReportCache(mockCache, NewReportMaterializer(mockUoW, newQuietLogger(t)), newQuietLogger(t))
		out, err := rc.GetOrCompute(ctx, window, func(context.Context, entity.ReportWindow) ([]*entity.UserTransaction, error) {
			computed = true
			return nil, nil
		})

		require.NoError(t, err)
		assert.False(t, computed)
		require.Len(t, out, 2)
		assert.Equal(t, int64(-300), out[1].Amount)
		mockUoW.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Miss computes, materializes and fills the cache", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)

		mockCache.EXPECT().Get(mock.Anything, key).Return("", false, nil)
		expectMaterialize(t, mockUoW, 7)

		var cached string
		mockCache.EXPECT().Set(mock.Anything, key, mock.Anything).
			RunAndReturn(func(ctx context.Context, key, value string) error {
				cached = value
				return nil
			})

		rc := NewReportCache(mockCache, NewReportMaterializer(mockUoW, newQuietLogger(t)), newQuietLogger(t))
		out, err := rc.GetOrCompute(ctx, window, func(context.Context, entity.ReportWindow) ([]*entity.UserTransaction, error) {
			return stored, nil
		})

		require.NoError(t, err)
		assert.Equal(t, entity.ToOutSlice(stored), out)

		decoded, err := codec.DecodeNested[entity.TransactionOut](cached)
		require.NoError(t, err)
		assert.Equal(t, out, decoded)
	})

	t.Run("Empty window caches an empty list", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)

		mockCache.EXPECT().Get(mock.Anything, key).Return("", false, nil)
		expectMaterialize(t, mockUoW, 8)
		mockCache.EXPECT().Set(mock.Anything, key, "[]").Return(nil)

		rc := NewReportCache(mockCache, NewReportMaterializer(mockUoW, newQuietLogger(t)), newQuietLogger(t))
		out, err := rc.GetOrCompute(ctx, window, func(context.Context, entity.ReportWindow) ([]*entity.UserTransaction, error) {
			return nil, nil
		})

		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("Undecodable payload is recomputed and overwritten", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)

		mockCache.EXPECT().Get(mock.Anything, key).Return("{not json", true, nil)
		expectMaterialize(t, mockUoW, 9)
		mockCache.EXPECT().Set(mock.Anything, key, mock.Anything).Return(nil)

		rc := NewReportCache(mockCache, NewReportMaterializer(mockUoW, newQuietLogger(t)), newQuietLogger(t))
		out, err := rc.GetOrCompute(ctx, window, func(context.Context, entity.ReportWindow) ([]*entity.UserTransaction, error) {
			return stored[:1], nil
		})

		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Materialization failure leaves the cache untouched", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockUoW := mockpersistence.NewMockUnitOfWork(t)
		mockRepo := mockpersistence.NewMockReportRepository(t)

		mockCache.EXPECT().Get(mock.Anything, key).Return("", false, nil)
		mockUoW.EXPECT().Begin(mock.Anything).Return(ctx, nil)
		mockUoW.EXPECT().GetReportRepository(mock.Anything).Return(mockRepo)
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrForeignKeyViolation)
		mockUoW.EXPECT().Rollback(mock.Anything).Return(nil)

		rc := NewReportCache(mockCache, NewReportMaterializer(mockUoW, newQuietLogger(t)), newQuietLogger(t))
		_, err := rc.GetOrCompute(ctx, window, func(context.Context, entity.ReportWindow) ([]*entity.UserTransaction, error) {
			return nil, nil
		})

		assert.ErrorIs(t, err, errs.ErrForeignKeyViolation)
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Query failure is reported at the query stage", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockCache.EXPECT().Get(mock.Anything, key).Return("", false, nil)

		rc := NewReportCache(mockCache, NewReportMaterializer(mockpersistence.NewMockUnitOfWork(t), newQuietLogger(t)), newQuietLogger(t))
		_, err := rc.GetOrCompute(ctx, window, func(context.Context, entity.ReportWindow) ([]*entity.UserTransaction, error) {
			return nil, errs.ErrDatabaseConnection
		})

		var reportErr *errs.ReportError
		require.ErrorAs(t, err, &reportErr)
		assert.Equal(t, "query", reportErr.Stage)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Cache backend failure propagates", func(t *testing.T) {
		mockCache := mockcache.NewMockCache(t)
		mockCache.EXPECT().Get(mock.Anything, key).Return("", false, fmt.Errorf("%w: timeout", errs.ErrCacheUnavailable))

		computed := false
		rc := NewReportCache(mockCache, NewReportMaterializer(mockpersistence.NewMockUnitOfWork(t), newQuietLogger(t)), newQuietLogger(t))
		_, err := rc.GetOrCompute(ctx, window, func(context.Context, entity.ReportWindow) ([]*entity.UserTransaction, error) {
			computed = true
			return nil, nil
		})

		assert.ErrorIs(t, err, errs.ErrCacheUnavailable)
		assert.False(t, computed)
	})
}
