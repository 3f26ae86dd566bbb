// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/John-Mota/production-optimizer-back/config"
	"github.com/John-Mota/production-optimizer-back/internal/circuitbreaker"
	"github.com/John-Mota/production-optimizer-back/internal/repository"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	MaterialsRepo         repository.RawMaterialsRepositoryInterface
	ProductsRepo          repository.ProductsRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// catalog and logs repositories behind circuit breakers.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Both catalog collections share one breaker so a struggling database
	// opens a single circuit instead of two half-open ones.
	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-catalog",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	materialsRepo := repository.NewRawMaterialsRepository(db)
	materialsRepoWithCB := repository.NewRawMaterialsRepositoryWithCircuitBreaker(materialsRepo, catalogCB)

	productsRepo := repository.NewProductsRepository(db)
	productsRepoWithCB := repository.NewProductsRepositoryWithCircuitBreaker(productsRepo, catalogCB)

	return &DatabaseComponents{
		DB:                    db,
		MaterialsRepo:         materialsRepoWithCB,
		ProductsRepo:          productsRepoWithCB,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		LogsCircuitBreaker:    logsCB,
	}
}

// mongoHealthChecker adapts the MongoDB ping to the health handler contract.
type mongoHealthChecker struct {
	db *repository.MongoDB
}

func (c *mongoHealthChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.db.HealthCheck(ctx)
}
