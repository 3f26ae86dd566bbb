// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/John-Mota/production-optimizer-back/config"
	"github.com/John-Mota/production-optimizer-back/internal/http"
	"github.com/John-Mota/production-optimizer-back/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Logger first, everything else logs through it
	InitializeLogger()

	// MongoDB repositories, circuit breakers, and the logging service
	dbComponents := InitializeDatabase(cfg.Database)

	// Solver engine and catalog services on top of the repositories
	serviceComponents := InitializeServices(cfg, dbComponents)

	if serviceComponents.LoggingService != nil {
		middleware.InitAsyncLogger(serviceComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
}
