package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cacheport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
	transactionUseCase "github.com/amirhossein-jamali/transaction-report-service/internal/domain/usecase/transaction"
	userUseCase "github.com/amirhossein-jamali/transaction-report-service/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	reportCache, pingers, err := buildCache(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize cache", map[string]any{
			"backend": cfg.Cache.Backend,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	pingers = append([]handler.Pinger{dbManager}, pingers...)

	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, tp, appLogger, cfg.Seed.DefaultPassword)

	if cfg.Seed.DefaultUsers {
		if err := userUseCaseImpl.CreateDefaultUsers(ctx); err != nil {
			appLogger.Error("Failed to create default users", map[string]any{
				"error": err.Error(),
			})
		}
	}

	transactionUseCaseImpl := transactionUseCase.NewTransactionService(
		dbManager.CreateUnitOfWork(),
		reportCache,
		tp,
		appLogger,
	)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.CORSOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Transaction: handler.NewTransactionHandler(transactionUseCaseImpl, appLogger, handler.WithRequestScope(dbManager.WithTimeout)),
		User:        handler.NewUserHandler(userUseCaseImpl, appLogger, handler.WithRequestScope(dbManager.WithTimeout)),
		Health:      handler.NewHealthHandler(appLogger, pingers...),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":  server.Addr,
			"env":   cfg.Environment,
			"cache": cfg.Cache.Backend,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildCache returns the configured cache backend and, for shared backends,
// the pinger that gates readiness on it
func buildCache(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (cacheport.Cache, []handler.Pinger, error) {
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemoryCache(appLogger), nil, nil
	}

	redisCache := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	}, appLogger)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		_ = redisCache.Close()
		return nil, nil, err
	}

	return redisCache, []handler.Pinger{redisCache}, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.DSN == "" {
			missingConfigs = append(missingConfigs, "database.dsn")
		}
	case database.DriverPostgres:
		if cfg.Database.DSN == "" {
			if cfg.Database.Host == "" {
				missingConfigs = append(missingConfigs, "database.host (or TR_DB_HOST environment variable)")
			}
			if cfg.Database.Username == "" {
				missingConfigs = append(missingConfigs, "database.username (or TR_DB_USERNAME environment variable)")
			}
			if cfg.Database.Database == "" {
				missingConfigs = append(missingConfigs, "database.database (or TR_DB_NAME environment variable)")
			}
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be one of: %s, %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.IsProduction() {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Cache.Backend == "memory" {
			warnings = append(warnings, "cache.backend memory is not shared between replicas")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
