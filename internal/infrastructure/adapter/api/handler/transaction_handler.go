package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	requestScope
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	logger coreport.Logger,
	opts ...Option,
) *TransactionHandler {
	return &TransactionHandler{
		requestScope:       newRequestScope(opts),
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// CreateTransaction handles the POST /api/transactions/create/ endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	literal, err := entity.ParseTransactionTypeLiteral(req.TransactionType)
	if err != nil {
		respondError(c, h.logger, "Invalid transaction type", err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	tx, err := h.transactionUseCase.CreateTransaction(ctx, req.UserID, *req.Amount, literal)
	if err != nil {
		respondError(c, h.logger, "Error creating transaction", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreateTransactionResponse(tx))
}

// GetTransactionsForReport handles the POST /api/transactions/report/ endpoint.
// Success is 201 because every first request for a window persists a report.
func (h *TransactionHandler) GetTransactionsForReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	start, err := dto.ParseTimestamp(req.DateStart)
	if err != nil {
		respondError(c, h.logger, "Invalid report start", err)
		return
	}
	end, err := dto.ParseTimestamp(req.DateEnd)
	if err != nil {
		respondError(c, h.logger, "Invalid report end", err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.transactionUseCase.GetTransactionsForReport(ctx, req.UserID, start, end)
	if err != nil {
		respondError(c, h.logger, "Error building transaction report", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewReportResponse(out))
}
