package dto

import (
	"time"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
)

// CreateTransactionRequest represents the API request for recording a transaction
type CreateTransactionRequest struct {
	UserID          uint64 `json:"user_id" binding:"required,gt=0"`
	Amount          *int64 `json:"amount" binding:"required"`
	TransactionType string `json:"transaction_type" binding:"required,oneof=deposit withdrawal"`
}

// CreateTransactionResponse represents the stored transaction
type CreateTransactionResponse struct {
	ID                uint64    `json:"id"`
	UserID            uint64    `json:"user_id"`
	Amount            int64     `json:"amount"`
	TransactionTypeID uint64    `json:"transaction_type_id"`
	Date              time.Time `json:"date"`
}

// ReportRequest represents the API request for a transaction report.
// Dates are ISO-8601; a value without an offset is taken as UTC.
type ReportRequest struct {
	UserID    uint64 `json:"user_id" binding:"required,gt=0"`
	DateStart string `json:"date_start" binding:"required"`
	DateEnd   string `json:"date_end" binding:"required"`
}

// TransactionOutResponse is one element of a report response
type TransactionOutResponse struct {
	UserID            uint64    `json:"user_id"`
	Amount            int64     `json:"amount"`
	TransactionTypeID uint64    `json:"transaction_type_id"`
	Date              time.Time `json:"date"`
}

// NewCreateTransactionResponse maps a stored transaction to its response
func NewCreateTransactionResponse(tx *entity.UserTransaction) CreateTransactionResponse {
	return CreateTransactionResponse{
		ID:                tx.ID,
		UserID:            tx.UserID,
		Amount:            tx.Amount,
		TransactionTypeID: tx.TransactionTypeID,
		Date:              tx.Date,
	}
}

// NewReportResponse maps a report result. An empty result renders as [] rather than null.
func NewReportResponse(out []entity.TransactionOut) []TransactionOutResponse {
	resp := make([]TransactionOutResponse, 0, len(out))
	for _, o := range out {
		resp = append(resp, TransactionOutResponse{
			UserID:            o.UserID,
			Amount:            o.Amount,
			TransactionTypeID: o.TransactionTypeID,
			Date:              o.Date,
		})
	}
	return resp
}
