package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/John-Mota/production-optimizer-back/internal/circuitbreaker"
	"github.com/John-Mota/production-optimizer-back/internal/domain/dto"
	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
	"github.com/John-Mota/production-optimizer-back/internal/i18n"
	"github.com/John-Mota/production-optimizer-back/internal/middleware"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

// ProductsHandler provides HTTP handlers for product catalog routes.
type ProductsHandler struct {
	productsService service.ProductsService
}

// NewProductsHandler creates a new ProductsHandler instance.
func NewProductsHandler(productsService service.ProductsService) *ProductsHandler {
	return &ProductsHandler{
		productsService: productsService,
	}
}

// List handles GET /api/products requests.
//
// @Summary      List products
// @Description  Returns all products with their compositions, sorted by name
// @Tags         Products
// @Produce      json
// @Success      200 {array} model.Product "Products"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Catalog temporarily unavailable"
// @Router       /api/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.productsService.List(c.Request.Context())
	if err != nil {
		h.storageError(builder, err)
		return
	}

	builder.SuccessOK(products)
}

// Get handles GET /api/products/:id requests.
//
// @Summary      Get product
// @Description  Returns a single product by id
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product id"
// @Success      200 {object} model.Product "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.productsService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		h.storageError(builder, err)
		return
	}

	builder.SuccessOK(product)
}

// Create handles POST /api/products requests.
//
// @Summary      Create product
// @Description  Stores a new product. Every composition entry must reference an existing raw material.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ProductRequest true "Product"
// @Success      201 {object} model.Product "Created product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown raw material"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ProductRequest](c)
	if err != nil {
		h.validationError(builder, err)
		return
	}

	composition := make([]model.CompositionItem, 0, len(req.Composition))
	for _, item := range req.Composition {
		composition = append(composition, model.CompositionItem{
			RawMaterialID: item.RawMaterialID,
			Quantity:      item.Quantity,
		})
	}

	product, err := h.productsService.Create(c.Request.Context(), req.Name, req.SalePrice, composition)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMaterial) {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
			return
		}
		h.storageError(builder, err)
		return
	}

	h.audit(c, "create_product", "Product created", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	builder.SuccessCreated(product)
}

// Delete handles DELETE /api/products/:id requests.
//
// @Summary      Delete product
// @Description  Removes a product from the catalog
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product id"
// @Success      204 "Product deleted"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{id} [delete]
func (h *ProductsHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.productsService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		h.storageError(builder, err)
		return
	}

	h.audit(c, "delete_product", "Product deleted", map[string]interface{}{
		"product_id": id,
	})

	builder.SuccessNoContent()
}

func (h *ProductsHandler) validationError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		return
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}

func (h *ProductsHandler) storageError(builder *ResponseBuilder, err error) {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

func (h *ProductsHandler) audit(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}
