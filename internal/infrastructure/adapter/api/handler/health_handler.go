package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/dto"
)

const readinessTimeout = 2 * time.Second

// Pinger is anything whose reachability gates readiness
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness checks
type HealthHandler struct {
	pingers []Pinger
	logger  coreport.Logger
}

// NewHealthHandler creates a health handler that is ready only when every pinger answers
func NewHealthHandler(logger coreport.Logger, pingers ...Pinger) *HealthHandler {
	return &HealthHandler{
		pingers: pingers,
		logger:  logger,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction report service"})
}

// Live handles GET /live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Service is live"})
}

// Ready handles GET /ready and GET /api/healthz/ready/
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	for _, p := range h.pingers {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("Readiness check failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrDatabaseConnection),
				Message: "Service is not ready",
			})
			return
		}
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Service is ready"})
}
