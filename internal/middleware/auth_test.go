package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Mota/production-optimizer-back/internal/domain/dto"
)

func setupAPIKeyRouter(clients map[string]string) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), APIKeyAuth(clients))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetClient(c))
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	clients := map[string]string{"frontend": "frontend-key", "reporting": "reporting-key"}

	tests := []struct {
		name           string
		header         string
		query          string
		expectedStatus int
		expectedClient string
	}{
		{
			name:           "valid key in header",
			header:         "frontend-key",
			expectedStatus: http.StatusOK,
			expectedClient: "frontend",
		},
		{
			name:           "valid key in query parameter",
			query:          "reporting-key",
			expectedStatus: http.StatusOK,
			expectedClient: "reporting",
		},
		{
			name:           "header takes precedence over query",
			header:         "frontend-key",
			query:          "reporting-key",
			expectedStatus: http.StatusOK,
			expectedClient: "frontend",
		},
		{
			name:           "missing key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid key",
			header:         "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAPIKeyRouter(clients)

			target := "/test"
			if tt.query != "" {
				target += "?" + APIKeyQuery + "=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedClient, w.Body.String())
				return
			}

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestAPIKeyAuth_DisabledWhenNoClients(t *testing.T) {
	router := setupAPIKeyRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
