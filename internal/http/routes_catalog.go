package http

import (
	"github.com/gin-gonic/gin"

	"github.com/John-Mota/production-optimizer-back/internal/middleware"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

// CatalogRoutes handles catalog and optimization route registration.
type CatalogRoutes struct {
	materialsHandler    *MaterialsHandler
	productsHandler     *ProductsHandler
	optimizationHandler *OptimizationHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(
	materialsService service.RawMaterialsService,
	productsService service.ProductsService,
	optimizationService service.OptimizationService,
) *CatalogRoutes {
	return &CatalogRoutes{
		materialsHandler:    NewMaterialsHandler(materialsService),
		productsHandler:     NewProductsHandler(productsService),
		optimizationHandler: NewOptimizationHandler(optimizationService),
	}
}

// RegisterPublicRoutes registers all catalog routes without authentication.
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.registerReadRoutes(rg)
	r.registerWriteRoutes(rg)
}

// RegisterProtectedRoutes registers catalog routes with mutating operations
// behind JWT authentication. Read routes stay public so the client can
// render the catalog and run optimizations without a token.
func (r *CatalogRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	r.registerReadRoutes(rg)

	protected := rg.Group("")
	protected.Use(middleware.JWTAuth(cfg.TokenService))
	r.registerWriteRoutes(protected)
}

// registerReadRoutes registers the read-only catalog and optimization routes.
// The /raw-materials and /optimization paths are aliases kept for older
// client builds.
func (r *CatalogRoutes) registerReadRoutes(rg *gin.RouterGroup) {
	rg.GET("/materials", r.materialsHandler.List)
	rg.GET("/materials/:id", r.materialsHandler.Get)
	rg.GET("/raw-materials", r.materialsHandler.List)
	rg.GET("/raw-materials/:id", r.materialsHandler.Get)

	rg.GET("/products", r.productsHandler.List)
	rg.GET("/products/:id", r.productsHandler.Get)

	rg.GET("/optimization/optimize", r.optimizationHandler.Optimize)
	rg.GET("/optimization", r.optimizationHandler.Optimize)
}

// registerWriteRoutes registers the mutating catalog routes.
func (r *CatalogRoutes) registerWriteRoutes(rg *gin.RouterGroup) {
	rg.POST("/materials", r.materialsHandler.Create)
	rg.PUT("/materials/:id", r.materialsHandler.Update)
	rg.DELETE("/materials/:id", r.materialsHandler.Delete)
	rg.POST("/raw-materials", r.materialsHandler.Create)
	rg.PUT("/raw-materials/:id", r.materialsHandler.Update)
	rg.DELETE("/raw-materials/:id", r.materialsHandler.Delete)

	rg.POST("/products", r.productsHandler.Create)
	rg.DELETE("/products/:id", r.productsHandler.Delete)
}
