package transaction

import (
	"context"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/persistence"
)

// ReportMaterializer persists a report row and its transaction links in one unit of work
type ReportMaterializer struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewReportMaterializer creates a new ReportMaterializer
func NewReportMaterializer(uow persistence.UnitOfWork, logger coreport.Logger) *ReportMaterializer {
	return &ReportMaterializer{
		uow:    uow,
		logger: logger,
	}
}

// Materialize inserts the report for window, re-reads it and links every
// transaction to it. Nothing is persisted unless every step succeeds.
func (m *ReportMaterializer) Materialize(ctx context.Context, window entity.ReportWindow, transactions []*entity.UserTransaction) (reportID uint64, err error) {
	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		return 0, m.fail(window, err)
	}

	defer func() {
		if err == nil {
			return
		}
		if rbErr := m.uow.Rollback(txCtx); rbErr != nil {
			m.logger.Error("Failed to roll back report materialization", map[string]any{
				"user_id": window.UserID,
				"error":   rbErr.Error(),
			})
		}
	}()

	repo := m.uow.GetReportRepository(txCtx)

	report := entity.NewTransactionReport(window)
	if err = repo.Create(txCtx, report); err != nil {
		return 0, m.fail(window, err)
	}

	stored, err := repo.GetByID(txCtx, report.ID)
	if err != nil {
		return 0, m.fail(window, err)
	}
	if stored == nil {
		err = errs.ErrReportNotFound
		return 0, m.fail(window, err)
	}

	ids := make([]uint64, 0, len(transactions))
	for _, tx := range transactions {
		ids = append(ids, tx.ID)
	}
	if err = repo.LinkTransactions(txCtx, stored.ID, ids); err != nil {
		return 0, m.fail(window, err)
	}

	if err = m.uow.Commit(txCtx); err != nil {
		return 0, m.fail(window, err)
	}

	m.logger.Info("Report materialized", map[string]any{
		"report_id":    stored.ID,
		"user_id":      window.UserID,
		"transactions": len(ids),
	})
	return stored.ID, nil
}

func (m *ReportMaterializer) fail(window entity.ReportWindow, err error) error {
	reportErr := errs.NewReportError(window.UserID, window.DateStart, window.DateEnd, "materialize", err)
	if fielded, ok := reportErr.(*errs.ReportError); ok {
		m.logger.Warn("Report materialization failed", fielded.LogFields())
	}
	return reportErr
}
