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
	"github.com/stretchr/testify/require"

	"github.com/John-Mota/production-optimizer-back/internal/domain/dto"
	"github.com/John-Mota/production-optimizer-back/internal/i18n"
)

func jsonContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		check       func(*testing.T, *dto.RawMaterialRequest)
	}{
		{
			name: "valid request",
			body: `{"name": "Wood", "stockQuantity": 100}`,
			check: func(t *testing.T, req *dto.RawMaterialRequest) {
				assert.Equal(t, "Wood", req.Name)
				assert.Equal(t, 100.0, req.StockQuantity)
			},
		},
		{
			name:        "malformed JSON",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "binding failure",
			body:        `{"stockQuantity": 10}`,
			expectError: true,
		},
		{
			name:        "validation failure",
			body:        `{"name": "Wood", "stockQuantity": -5}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)

			req, err := BuildRequestAndValidate[dto.RawMaterialRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			tt.check(t, req)
		})
	}
}

func TestUnmarshalFromReader(t *testing.T) {
	req, err := UnmarshalFromReader[dto.ProductRequest](strings.NewReader(
		`{"name": "Table", "salePrice": 250.5, "composition": [{"rawMaterialId": "m1", "quantity": 20}]}`,
	))

	require.NoError(t, err)
	assert.Equal(t, "Table", req.Name)
	require.Len(t, req.Composition, 1)
	assert.Equal(t, 20.0, req.Composition[0].Quantity)

	_, err = UnmarshalFromReader[dto.ProductRequest](strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := jsonContext("{}")

	NewResponseBuilder(c).SuccessOK(map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hello": "world"}`, w.Body.String())
}

func TestResponseBuilder_SuccessCreated(t *testing.T) {
	c, w := jsonContext("{}")

	NewResponseBuilder(c).SuccessCreated(map[string]string{"id": "m1"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestResponseBuilder_SuccessNoContent(t *testing.T) {
	c, w := jsonContext("{}")

	NewResponseBuilder(c).SuccessNoContent()
	// The status set by c.Status is only written on flush.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := jsonContext("{}")

	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyMaterialNotFound, errors.New("lookup failed"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	assert.NotEmpty(t, resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
}

func TestResponseBuilder_ErrorWithMessage(t *testing.T) {
	c, w := jsonContext("{}")

	NewResponseBuilder(c).ErrorWithMessage(http.StatusBadRequest, "name: must not be empty", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "name: must not be empty", resp.Message)
}

func TestErrorResponsePool_Reuse(t *testing.T) {
	// A pooled response must come back clean for the next error.
	for i := 0; i < 10; i++ {
		c, w := jsonContext("{}")
		NewResponseBuilder(c).ErrorWithMessage(http.StatusBadRequest, "first", nil)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "first", resp.Message)
		assert.Empty(t, resp.Details)
	}
}
