package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/John-Mota/production-optimizer-back/internal/domain/dto"
	"github.com/John-Mota/production-optimizer-back/internal/mocks"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

func setupJWTRouter(tokenService service.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), JWTAuth(tokenService))
	router.POST("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetClient(c))
	})
	return router
}

func performJWTRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tokenService := new(mocks.MockTokenService)
	tokenService.On("ValidateToken", "valid-token").Return(&dto.Claims{Client: "frontend"}, nil)

	router := setupJWTRouter(tokenService)
	w := performJWTRequest(router, "Bearer valid-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "frontend", w.Body.String())
}

func TestJWTAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		setupMock  func(*mocks.MockTokenService)
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
		},
		{
			name:       "validation failure",
			authHeader: "Bearer expired-token",
			setupMock: func(m *mocks.MockTokenService) {
				m.On("ValidateToken", "expired-token").Return(nil, service.ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenService := new(mocks.MockTokenService)
			if tt.setupMock != nil {
				tt.setupMock(tokenService)
			}

			router := setupJWTRouter(tokenService)
			w := performJWTRequest(router, tt.authHeader)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
