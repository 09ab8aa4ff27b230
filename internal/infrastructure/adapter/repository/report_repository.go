package repository

import (
	"context"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// linkBatchSize caps rows per INSERT when linking a large result set
const linkBatchSize = 500

// ReportRepository implements persistence.ReportRepository using GORM
type ReportRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReportRepository creates a new ReportRepository instance
func NewReportRepository(db *gorm.DB, logger coreport.Logger) *ReportRepository {
	return &ReportRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create inserts the report row
func (r *ReportRepository) Create(ctx context.Context, report *entity.TransactionReport) error {
	reportModel := model.TransactionReport{
		UserID:    report.UserID,
		DateStart: report.DateStart.UTC(),
		DateEnd:   report.DateEnd.UTC(),
	}

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&reportModel)
	if result.Error != nil {
		r.logger.Error("Failed to create report", map[string]any{
			"user_id": report.UserID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.Translate(result.Error, errs.ErrNotFound)
	}

	report.ID = reportModel.ID
	return nil
}

// GetByID loads a report row
func (r *ReportRepository) GetByID(ctx context.Context, id uint64) (*entity.TransactionReport, error) {
	var reportModel model.TransactionReport
	result := r.db.WithContext(ctx).First(&reportModel, id)
	if result.Error != nil {
		return nil, r.errorClassifier.Translate(result.Error, errs.ErrReportNotFound)
	}

	return &entity.TransactionReport{
		ID:        reportModel.ID,
		UserID:    reportModel.UserID,
		DateStart: reportModel.DateStart.UTC(),
		DateEnd:   reportModel.DateEnd.UTC(),
	}, nil
}

// LinkTransactions writes one relation row per transaction in batches
func (r *ReportRepository) LinkTransactions(ctx context.Context, reportID uint64, transactionIDs []uint64) error {
	if len(transactionIDs) == 0 {
		return nil
	}

	relations := make([]model.ReportTransactionRelation, 0, len(transactionIDs))
	for _, id := range transactionIDs {
		relations = append(relations, model.ReportTransactionRelation{
			ReportID:      reportID,
			TransactionID: id,
		})
	}

	result := r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(&relations, linkBatchSize)
	if result.Error != nil {
		r.logger.Error("Failed to link report transactions", map[string]any{
			"report_id": reportID,
			"count":     len(transactionIDs),
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.Translate(result.Error, errs.ErrNotFound)
	}

	r.logger.Debug("Report transactions linked", map[string]any{
		"report_id": reportID,
		"count":     len(relations),
	})
	return nil
}

// CountRelations counts relation rows for a report
func (r *ReportRepository) CountRelations(ctx context.Context, reportID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReportTransactionRelation{}).
		Where("report_id = ?", reportID).
		Count(&count)
	if result.Error != nil {
		return 0, r.errorClassifier.Translate(result.Error, errs.ErrNotFound)
	}
	return count, nil
}
