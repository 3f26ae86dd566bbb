//go:build !integration

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
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

func init() {
	gin.SetMode(gin.TestMode)
}

// performRequest runs a request through the router and records the response.
func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func setupMaterialsRouter() (*gin.Engine, *mocks.MockRawMaterialsService) {
	materialsService := new(mocks.MockRawMaterialsService)
	handler := NewMaterialsHandler(materialsService)

	router := gin.New()
	router.GET("/api/materials", handler.List)
	router.GET("/api/materials/:id", handler.Get)
	router.POST("/api/materials", handler.Create)
	router.PUT("/api/materials/:id", handler.Update)
	router.DELETE("/api/materials/:id", handler.Delete)
	return router, materialsService
}

func TestMaterialsHandler_List(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("List", mock.Anything).Return([]model.RawMaterial{
		{ID: "m1", Name: "Screws", StockQuantity: 50},
		{ID: "m2", Name: "Wood", StockQuantity: 100},
	}, nil)

	w := performRequest(router, http.MethodGet, "/api/materials", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var materials []model.RawMaterial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &materials))
	require.Len(t, materials, 2)
	assert.Equal(t, "Screws", materials[0].Name)
	assert.Equal(t, 100.0, materials[1].StockQuantity)
}

func TestMaterialsHandler_List_StorageFailure(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "circuit open",
			err:            circuitbreaker.ErrCircuitOpen,
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   dto.ErrCodeUnavailable,
		},
		{
			name:           "generic failure",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, materialsService := setupMaterialsRouter()
			materialsService.On("List", mock.Anything).Return(nil, tt.err)

			w := performRequest(router, http.MethodGet, "/api/materials", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
		})
	}
}

func TestMaterialsHandler_Get(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("GetByID", mock.Anything, "m1").
		Return(&model.RawMaterial{ID: "m1", Name: "Wood", StockQuantity: 100}, nil)

	w := performRequest(router, http.MethodGet, "/api/materials/m1", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var material model.RawMaterial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &material))
	assert.Equal(t, "m1", material.ID)
	assert.Equal(t, "Wood", material.Name)
}

func TestMaterialsHandler_Get_NotFound(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("GetByID", mock.Anything, "ghost").
		Return(nil, service.ErrMaterialNotFound)

	w := performRequest(router, http.MethodGet, "/api/materials/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
}

func TestMaterialsHandler_Create(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("Create", mock.Anything, "Wood", 100.0).
		Return(&model.RawMaterial{ID: "m1", Name: "Wood", StockQuantity: 100}, nil)

	w := performRequest(router, http.MethodPost, "/api/materials", `{"name": "Wood", "stockQuantity": 100}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var material model.RawMaterial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &material))
	assert.Equal(t, "m1", material.ID)
	materialsService.AssertExpectations(t)
}

func TestMaterialsHandler_Create_ZeroStockAllowed(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("Create", mock.Anything, "Glue", 0.0).
		Return(&model.RawMaterial{ID: "m2", Name: "Glue", StockQuantity: 0}, nil)

	w := performRequest(router, http.MethodPost, "/api/materials", `{"name": "Glue", "stockQuantity": 0}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMaterialsHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `invalid`},
		{name: "missing name", body: `{"stockQuantity": 10}`},
		{name: "empty name", body: `{"name": "", "stockQuantity": 10}`},
		{name: "negative stock", body: `{"name": "Wood", "stockQuantity": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, materialsService := setupMaterialsRouter()

			w := performRequest(router, http.MethodPost, "/api/materials", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, dto.ErrCodeInvalidRequest, decodeError(t, w).Error)
			materialsService.AssertNotCalled(t, "Create")
		})
	}
}

func TestMaterialsHandler_Update(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("Update", mock.Anything, "m1", "Oak Wood", 80.0).
		Return(&model.RawMaterial{ID: "m1", Name: "Oak Wood", StockQuantity: 80}, nil)

	w := performRequest(router, http.MethodPut, "/api/materials/m1", `{"name": "Oak Wood", "stockQuantity": 80}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var material model.RawMaterial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &material))
	assert.Equal(t, "Oak Wood", material.Name)
	assert.Equal(t, 80.0, material.StockQuantity)
}

func TestMaterialsHandler_Update_NotFound(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("Update", mock.Anything, "ghost", "Wood", 10.0).
		Return(nil, service.ErrMaterialNotFound)

	w := performRequest(router, http.MethodPut, "/api/materials/ghost", `{"name": "Wood", "stockQuantity": 10}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMaterialsHandler_Delete(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("Delete", mock.Anything, "m1").Return(nil)

	w := performRequest(router, http.MethodDelete, "/api/materials/m1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestMaterialsHandler_Delete_NotFound(t *testing.T) {
	router, materialsService := setupMaterialsRouter()
	materialsService.On("Delete", mock.Anything, "ghost").Return(service.ErrMaterialNotFound)

	w := performRequest(router, http.MethodDelete, "/api/materials/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
