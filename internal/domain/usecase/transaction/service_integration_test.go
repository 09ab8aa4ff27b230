package transaction

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
)

// steppingClock advances by step on every Now call
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *steppingClock) Since(t time.Time) coreport.Duration { return coreport.Duration(c.Now().Sub(t)) }

func (c *steppingClock) Sleep(coreport.Duration) {}

func (c *steppingClock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// countingUoW counts how often the ledger is read
type countingUoW struct {
	persistence.UnitOfWork
	ledgerReads atomic.Int64
}

func (u *countingUoW) GetUserTransactionRepository(ctx context.Context) persistence.UserTransactionRepository {
	u.ledgerReads.Add(1)
	return u.UnitOfWork.GetUserTransactionRepository(ctx)
}

type serviceFixture struct {
	db      *database.TestDBManager
	uow     *countingUoW
	service *Service
	clock   *steppingClock
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	log := logger.NewNoopLogger()

	db := database.NewTestDBManager(t, log)
	uow := &countingUoW{UnitOfWork: db.Manager.CreateUnitOfWork()}
	clock := &steppingClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), step: time.Hour}

	return &serviceFixture{
		db:      db,
		uow:     uow,
		service: NewTransactionService(uow, cache.NewMemoryCache(log), clock, log),
		clock:   clock,
	}
}

func TestService_ReportIsMaterializedOnceAndFrozen(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.db.CreateTestUser(t, 1)

	for _, step := range []struct {
		amount  int64
		literal entity.TransactionTypeLiteral
	}{
		{100, entity.TransactionTypeDeposit},
		{300, entity.TransactionTypeWithdrawal},
		{1000, entity.TransactionTypeDeposit},
	} {
		_, err := f.service.CreateTransaction(ctx, 1, step.amount, step.literal)
		require.NoError(t, err)
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2124, 1, 1, 0, 0, 0, 0, time.UTC)

	readsBefore := f.uow.ledgerReads.Load()
	first, err := f.service.GetTransactionsForReport(ctx, 1, start, end)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, []int64{100, 300, 1000}, []int64{first[0].Amount, first[1].Amount, first[2].Amount})
	assert.Equal(t, readsBefore+1, f.uow.ledgerReads.Load())

	_, err = f.service.CreateTransaction(ctx, 1, 50, entity.TransactionTypeDeposit)
	require.NoError(t, err)

	readsBefore = f.uow.ledgerReads.Load()
	second, err := f.service.GetTransactionsForReport(ctx, 1, start, end)
	require.NoError(t, err)
	assert.Equal(t, readsBefore, f.uow.ledgerReads.Load(), "cached window must not read the ledger")
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].Amount, second[i].Amount)
		assert.True(t, first[i].Date.Equal(second[i].Date))
	}

	assert.Equal(t, int64(1), f.db.CountRows(t, &model.TransactionReport{}))
	assert.Equal(t, int64(3), f.db.CountRows(t, &model.ReportTransactionRelation{}))
}

func TestService_ReportBoundsAreInclusive(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.db.CreateTestUser(t, 1)

	var created []*entity.UserTransaction
	for i := 0; i < 3; i++ {
		tx, err := f.service.CreateTransaction(ctx, 1, int64(i+1), entity.TransactionTypeDeposit)
		require.NoError(t, err)
		created = append(created, tx)
	}

	out, err := f.service.GetTransactionsForReport(ctx, 1, created[1].Date, created[1].Date)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].Amount)

	out, err = f.service.GetTransactionsForReport(ctx, 1, created[0].Date, created[1].Date)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestService_SubMicrosecondBoundsShareOneWindow(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.db.CreateTestUser(t, 1)

	tx, err := f.service.CreateTransaction(ctx, 1, 100, entity.TransactionTypeDeposit)
	require.NoError(t, err)

	start := tx.Date
	end := tx.Date.Add(time.Hour)

	out, err := f.service.GetTransactionsForReport(ctx, 1, start.Add(time.Nanosecond), end)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(100), out[0].Amount)

	readsBefore := f.uow.ledgerReads.Load()
	out, err = f.service.GetTransactionsForReport(ctx, 1, start, end)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, readsBefore, f.uow.ledgerReads.Load())
	assert.Equal(t, int64(1), f.db.CountRows(t, &model.TransactionReport{}))
}

func TestService_EmptyWindowStillMaterializes(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.db.CreateTestUser(t, 2)

	out, err := f.service.GetTransactionsForReport(ctx, 2,
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, int64(1), f.db.CountRows(t, &model.TransactionReport{}))
	assert.Equal(t, int64(0), f.db.CountRows(t, &model.ReportTransactionRelation{}))
}

func TestService_UnknownUser(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2124, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Report fails on the report insert", func(t *testing.T) {
		_, err := f.service.GetTransactionsForReport(ctx, 404, start, end)

		assert.ErrorIs(t, err, errs.ErrForeignKeyViolation)
		assert.Equal(t, int64(0), f.db.CountRows(t, &model.TransactionReport{}))
	})

	t.Run("Failed report is retried on the next request", func(t *testing.T) {
		readsBefore := f.uow.ledgerReads.Load()
		_, err := f.service.GetTransactionsForReport(ctx, 404, start, end)

		assert.ErrorIs(t, err, errs.ErrForeignKeyViolation)
		assert.Equal(t, readsBefore+1, f.uow.ledgerReads.Load())
	})

	t.Run("Create fails on the ledger insert", func(t *testing.T) {
		_, err := f.service.CreateTransaction(ctx, 404, 100, entity.TransactionTypeDeposit)

		assert.ErrorIs(t, err, errs.ErrForeignKeyViolation)
		assert.Equal(t, int64(0), f.db.CountRows(t, &model.UserTransaction{}))
	})
}

func TestService_TypeResolutionIsIdempotent(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.db.CreateTestUser(t, 1)

	first, err := f.service.CreateTransaction(ctx, 1, 10, entity.TransactionTypeDeposit)
	require.NoError(t, err)
	second, err := f.service.CreateTransaction(ctx, 1, 20, entity.TransactionTypeDeposit)
	require.NoError(t, err)

	assert.Equal(t, first.TransactionTypeID, second.TransactionTypeID)
	assert.Equal(t, int64(len(entity.AllTransactionTypes)), f.db.CountRows(t, &model.TransactionType{}))

	id, err := f.service.registry.ResolveOrCreate(ctx, "fee")
	require.NoError(t, err)
	again, err := f.service.registry.ResolveOrCreate(ctx, "fee")
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Equal(t, int64(len(entity.AllTransactionTypes)+1), f.db.CountRows(t, &model.TransactionType{}))
}
