package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/John-Mota/production-optimizer-back/internal/circuitbreaker"
	"github.com/John-Mota/production-optimizer-back/internal/i18n"
	"github.com/John-Mota/production-optimizer-back/internal/metrics"
	"github.com/John-Mota/production-optimizer-back/internal/middleware"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

// OptimizationHandler provides HTTP handlers for optimization routes.
type OptimizationHandler struct {
	optimizationService service.OptimizationService
}

// NewOptimizationHandler creates a new OptimizationHandler instance.
func NewOptimizationHandler(optimizationService service.OptimizationService) *OptimizationHandler {
	return &OptimizationHandler{
		optimizationService: optimizationService,
	}
}

// Optimize handles GET /api/optimization/optimize requests.
//
// @Summary      Compute optimal production plan
// @Description  Reads the current catalog and returns the production quantities maximizing total projected sale value under raw material stock constraints. An empty catalog or one where nothing is producible yields an empty plan with zero value. When the exact search exceeds its time budget the response carries exact=false and a best-effort plan.
// @Tags         Optimization
// @Produce      json
// @Success      200 {object} model.OptimizationResult "Optimal production plan"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Catalog temporarily unavailable"
// @Router       /api/optimization/optimize [get]
func (h *OptimizationHandler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)
	start := time.Now()

	result, err := h.optimizationService.Optimize(c.Request.Context())
	if err != nil {
		metrics.RecordOptimizationError()
		switch {
		case errors.Is(err, service.ErrSnapshotUnavailable), errors.Is(err, circuitbreaker.ErrCircuitOpen):
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	metrics.RecordOptimizationRun(time.Since(start), len(result.ProductionSuggestions), result.Exact)

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "optimize", "Optimization run completed", map[string]interface{}{
				"total_projected_value": result.TotalProjectedValue,
				"suggestions":           len(result.ProductionSuggestions),
				"exact":                 result.Exact,
			})
		}
	}

	builder.SuccessOK(result)
}
