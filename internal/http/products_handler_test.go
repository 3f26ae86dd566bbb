//go:build !integration

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/John-Mota/production-optimizer-back/internal/circuitbreaker"
	"github.com/John-Mota/production-optimizer-back/internal/domain/dto"
	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
	"github.com/John-Mota/production-optimizer-back/internal/mocks"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

func setupProductsRouter() (*gin.Engine, *mocks.MockProductsService) {
	productsService := new(mocks.MockProductsService)
	handler := NewProductsHandler(productsService)

	router := gin.New()
	router.GET("/api/products", handler.List)
	router.GET("/api/products/:id", handler.Get)
	router.POST("/api/products", handler.Create)
	router.DELETE("/api/products/:id", handler.Delete)
	return router, productsService
}

func TestProductsHandler_List(t *testing.T) {
	router, productsService := setupProductsRouter()
	productsService.On("List", mock.Anything).Return([]model.Product{
		{
			ID: "p1", Name: "Table", SalePrice: 250.5,
			Composition: []model.CompositionItem{{RawMaterialID: "m1", Quantity: 20}},
		},
	}, nil)

	w := performRequest(router, http.MethodGet, "/api/products", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Table", products[0].Name)
	require.Len(t, products[0].Composition, 1)
	assert.Equal(t, "m1", products[0].Composition[0].RawMaterialID)
}

func TestProductsHandler_List_CircuitOpen(t *testing.T) {
	router, productsService := setupProductsRouter()
	productsService.On("List", mock.Anything).Return(nil, circuitbreaker.ErrCircuitOpen)

	w := performRequest(router, http.MethodGet, "/api/products", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Error)
}

func TestProductsHandler_Get(t *testing.T) {
	router, productsService := setupProductsRouter()
	productsService.On("GetByID", mock.Anything, "p1").
		Return(&model.Product{ID: "p1", Name: "Table", SalePrice: 250.5}, nil)

	w := performRequest(router, http.MethodGet, "/api/products/p1", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var product model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, 250.5, product.SalePrice)
}

func TestProductsHandler_Get_NotFound(t *testing.T) {
	router, productsService := setupProductsRouter()
	productsService.On("GetByID", mock.Anything, "ghost").Return(nil, service.ErrProductNotFound)

	w := performRequest(router, http.MethodGet, "/api/products/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
}

func TestProductsHandler_Create(t *testing.T) {
	router, productsService := setupProductsRouter()

	expectedComposition := []model.CompositionItem{{RawMaterialID: "m1", Quantity: 20}}
	productsService.On("Create", mock.Anything, "Table", 250.5, expectedComposition).
		Return(&model.Product{ID: "p1", Name: "Table", SalePrice: 250.5, Composition: expectedComposition}, nil)

	body := `{"name": "Table", "salePrice": 250.5, "composition": [{"rawMaterialId": "m1", "quantity": 20}]}`
	w := performRequest(router, http.MethodPost, "/api/products", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var product model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "p1", product.ID)
	productsService.AssertExpectations(t)
}

func TestProductsHandler_Create_EmptyComposition(t *testing.T) {
	// A product without composition is stored; the optimizer will leave
	// it out of its plans.
	router, productsService := setupProductsRouter()
	productsService.On("Create", mock.Anything, "Sticker", 2.5, []model.CompositionItem{}).
		Return(&model.Product{ID: "p2", Name: "Sticker", SalePrice: 2.5}, nil)

	w := performRequest(router, http.MethodPost, "/api/products", `{"name": "Sticker", "salePrice": 2.5}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProductsHandler_Create_UnknownMaterial(t *testing.T) {
	router, productsService := setupProductsRouter()
	unknownErr := errors.Join(service.ErrUnknownMaterial, errors.New("unknown raw material: ghost"))
	productsService.On("Create", mock.Anything, "Table", 250.5, mock.Anything).
		Return(nil, unknownErr)

	body := `{"name": "Table", "salePrice": 250.5, "composition": [{"rawMaterialId": "ghost", "quantity": 20}]}`
	w := performRequest(router, http.MethodPost, "/api/products", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Contains(t, resp.Message, "ghost")
}

func TestProductsHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `invalid`},
		{name: "missing name", body: `{"salePrice": 10}`},
		{name: "negative price", body: `{"name": "Table", "salePrice": -1}`},
		{name: "composition without material id", body: `{"name": "Table", "salePrice": 10, "composition": [{"quantity": 5}]}`},
		{name: "composition with zero quantity", body: `{"name": "Table", "salePrice": 10, "composition": [{"rawMaterialId": "m1", "quantity": 0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, productsService := setupProductsRouter()

			w := performRequest(router, http.MethodPost, "/api/products", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			productsService.AssertNotCalled(t, "Create")
		})
	}
}

func TestProductsHandler_Delete(t *testing.T) {
	router, productsService := setupProductsRouter()
	productsService.On("Delete", mock.Anything, "p1").Return(nil)

	w := performRequest(router, http.MethodDelete, "/api/products/p1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProductsHandler_Delete_NotFound(t *testing.T) {
	router, productsService := setupProductsRouter()
	productsService.On("Delete", mock.Anything, "ghost").Return(service.ErrProductNotFound)

	w := performRequest(router, http.MethodDelete, "/api/products/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
