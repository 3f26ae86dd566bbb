package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/John-Mota/production-optimizer-back/internal/circuitbreaker"
	"github.com/John-Mota/production-optimizer-back/internal/domain/dto"
	"github.com/John-Mota/production-optimizer-back/internal/i18n"
	"github.com/John-Mota/production-optimizer-back/internal/middleware"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

// MaterialsHandler provides HTTP handlers for raw material catalog routes.
type MaterialsHandler struct {
	materialsService service.RawMaterialsService
}

// NewMaterialsHandler creates a new MaterialsHandler instance.
func NewMaterialsHandler(materialsService service.RawMaterialsService) *MaterialsHandler {
	return &MaterialsHandler{
		materialsService: materialsService,
	}
}

// List handles GET /api/materials requests.
//
// @Summary      List raw materials
// @Description  Returns all raw materials sorted by name
// @Tags         Materials
// @Produce      json
// @Success      200 {array} model.RawMaterial "Raw materials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Catalog temporarily unavailable"
// @Router       /api/materials [get]
func (h *MaterialsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	materials, err := h.materialsService.List(c.Request.Context())
	if err != nil {
		h.storageError(builder, err)
		return
	}

	builder.SuccessOK(materials)
}

// Get handles GET /api/materials/:id requests.
//
// @Summary      Get raw material
// @Description  Returns a single raw material by id
// @Tags         Materials
// @Produce      json
// @Param        id path string true "Raw material id"
// @Success      200 {object} model.RawMaterial "Raw material"
// @Failure      404 {object} dto.ErrorResponse "Raw material not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/materials/{id} [get]
func (h *MaterialsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	material, err := h.materialsService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, err)
			return
		}
		h.storageError(builder, err)
		return
	}

	builder.SuccessOK(material)
}

// Create handles POST /api/materials requests.
//
// @Summary      Create raw material
// @Description  Stores a new raw material and returns it with its server-assigned id
// @Tags         Materials
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.RawMaterialRequest true "Raw material"
// @Success      201 {object} model.RawMaterial "Created raw material"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/materials [post]
func (h *MaterialsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RawMaterialRequest](c)
	if err != nil {
		h.validationError(builder, err)
		return
	}

	material, err := h.materialsService.Create(c.Request.Context(), req.Name, req.StockQuantity)
	if err != nil {
		h.storageError(builder, err)
		return
	}

	h.audit(c, "create_material", "Raw material created", map[string]interface{}{
		"material_id": material.ID,
		"name":        material.Name,
	})

	builder.SuccessCreated(material)
}

// Update handles PUT /api/materials/:id requests.
//
// @Summary      Update raw material
// @Description  Replaces a raw material's name and stock quantity
// @Tags         Materials
// @Accept       json
// @Produce      json
// @Param        id path string true "Raw material id"
// @Param        request body dto.RawMaterialRequest true "Raw material"
// @Success      200 {object} model.RawMaterial "Updated raw material"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Raw material not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/materials/{id} [put]
func (h *MaterialsHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RawMaterialRequest](c)
	if err != nil {
		h.validationError(builder, err)
		return
	}

	material, err := h.materialsService.Update(c.Request.Context(), c.Param("id"), req.Name, req.StockQuantity)
	if err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, err)
			return
		}
		h.storageError(builder, err)
		return
	}

	h.audit(c, "update_material", "Raw material updated", map[string]interface{}{
		"material_id": material.ID,
		"name":        material.Name,
	})

	builder.SuccessOK(material)
}

// Delete handles DELETE /api/materials/:id requests.
//
// @Summary      Delete raw material
// @Description  Removes a raw material. Products still referencing it are excluded from optimization until fixed.
// @Tags         Materials
// @Produce      json
// @Param        id path string true "Raw material id"
// @Success      204 "Raw material deleted"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Raw material not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/materials/{id} [delete]
func (h *MaterialsHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.materialsService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, err)
			return
		}
		h.storageError(builder, err)
		return
	}

	h.audit(c, "delete_material", "Raw material deleted", map[string]interface{}{
		"material_id": id,
	})

	builder.SuccessNoContent()
}

// validationError maps binding and validation failures to a 400 response.
func (h *MaterialsHandler) validationError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		return
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}

// storageError maps repository failures to a 500 or 503 response.
func (h *MaterialsHandler) storageError(builder *ResponseBuilder, err error) {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// audit records a catalog mutation when a logging service is configured.
func (h *MaterialsHandler) audit(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}
