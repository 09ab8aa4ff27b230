package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/transaction-report-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	requestScope
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
	opts ...Option,
) *UserHandler {
	return &UserHandler{
		requestScope: newRequestScope(opts),
		userUseCase:  userUseCase,
		logger:       logger,
	}
}

// GetBalance handles the GET /api/users/:userId/balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	balance, err := h.userUseCase.GetFormattedUserBalance(ctx, userID)
	if err != nil {
		respondError(c, h.logger, "Error getting user balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:     balance.UserID,
		Name:       balance.Name,
		Balance:    balance.Balance,
		IsVerified: balance.IsVerified,
	})
}
