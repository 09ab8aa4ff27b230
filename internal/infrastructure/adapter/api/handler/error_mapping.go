package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/middleware"
)

// statusFor maps domain errors to HTTP status codes and client-safe messages
func statusFor(err error) (int, string) {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domainerr.ErrForeignKeyViolation):
		return http.StatusUnprocessableEntity, "Referenced user or transaction type does not exist"
	case errors.Is(err, domainerr.ErrNullConstraintViolation):
		return http.StatusUnprocessableEntity, "Required field is missing"
	case errors.Is(err, domainerr.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domainerr.ErrReportNotFound):
		return http.StatusNotFound, "Transaction report not found"
	case errors.Is(err, domainerr.ErrCacheUnavailable), errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError logs err and writes the standard error body
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status, clientMessage := statusFor(err)

	fields := map[string]any{
		"path":       c.Request.URL.Path,
		"status":     status,
		"error":      err.Error(),
		"request_id": middleware.GetRequestID(c),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Warn(message, fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: clientMessage,
	})
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"path":       c.Request.URL.Path,
		"error":      err.Error(),
		"request_id": middleware.GetRequestID(c),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrValidation),
		Message: "Invalid request format: " + err.Error(),
	})
}
