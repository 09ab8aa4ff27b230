package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every handler the router serves
type Handlers struct {
	Transaction *handler.TransactionHandler
	User        *handler.UserHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", h.Health.Root)
	router.GET("/ready", h.Health.Ready)
	router.GET("/live", h.Health.Live)

	api := router.Group("/api")
	{
		api.GET("/healthz/ready/", h.Health.Ready)

		transactions := api.Group("/transactions")
		{
			// POST /api/transactions/create/
			transactions.POST("/create/", h.Transaction.CreateTransaction)

			// POST /api/transactions/report/
			transactions.POST("/report/", h.Transaction.GetTransactionsForReport)
		}

		// GET /api/users/:userId/balance
		api.GET("/users/:userId/balance", h.User.GetBalance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, corsOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(corsOrigins))
}
