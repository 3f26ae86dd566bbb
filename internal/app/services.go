// Package app provides service initialization.
package app

import (
	"github.com/John-Mota/production-optimizer-back/config"
	"github.com/John-Mota/production-optimizer-back/internal/repository"
	"github.com/John-Mota/production-optimizer-back/internal/service"
	"github.com/John-Mota/production-optimizer-back/internal/solver"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	OptimizationService service.OptimizationService
	MaterialsService    service.RawMaterialsService
	ProductsService     service.ProductsService
	LoggingService      service.LoggingService
	TokenService        service.TokenService
}

// InitializeServices initializes the solver engine and the catalog services.
// Services still get created when dbComponents is nil so handlers can
// respond with a configuration error instead of panicking.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	var (
		materialsRepo  repository.RawMaterialsRepositoryInterface
		productsRepo   repository.ProductsRepositoryInterface
		loggingService service.LoggingService
	)
	if dbComponents != nil {
		materialsRepo = dbComponents.MaterialsRepo
		productsRepo = dbComponents.ProductsRepo
		loggingService = dbComponents.LoggingService
	}

	var solverOpts []solver.Option
	if cfg.Solver.TimeBudget > 0 {
		solverOpts = append(solverOpts, solver.WithTimeBudget(cfg.Solver.TimeBudget))
	}
	engine := solver.NewEngine(solverOpts...)

	snapshots := service.NewSnapshotLoader(materialsRepo, productsRepo)

	var optimizationOpts []service.OptimizationOption
	if cfg.Solver.CacheSize > 0 {
		optimizationOpts = append(optimizationOpts, service.WithResultCache(cfg.Solver.CacheSize, cfg.Solver.CacheTTL))
	}

	var tokenService service.TokenService
	if cfg.Auth.Enabled {
		tokenService = service.NewTokenService(cfg.Auth)
	}

	return &ServiceComponents{
		OptimizationService: service.NewOptimizationService(snapshots, engine, optimizationOpts...),
		MaterialsService:    service.NewRawMaterialsService(materialsRepo),
		ProductsService:     service.NewProductsService(productsRepo, materialsRepo),
		LoggingService:      loggingService,
		TokenService:        tokenService,
	}
}
