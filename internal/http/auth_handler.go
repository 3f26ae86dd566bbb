package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/John-Mota/production-optimizer-back/internal/i18n"
	"github.com/John-Mota/production-optimizer-back/internal/service"
)

// AuthHandler exchanges API keys for short-lived JWT access tokens.
type AuthHandler struct {
	tokenService service.TokenService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(tokenService service.TokenService) *AuthHandler {
	return &AuthHandler{
		tokenService: tokenService,
	}
}

// IssueToken handles POST /api/auth/token requests.
//
// @Summary      Issue access token
// @Description  Exchanges a valid API key for a short-lived Bearer token used on mutating catalog routes
// @Tags         Auth
// @Produce      json
// @Param        X-API-Key header string true "API key"
// @Success      200 {object} dto.TokenResponse "Access token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	apiKey := c.GetHeader("X-API-Key")
	if apiKey == "" {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired, nil)
		return
	}

	token, err := h.tokenService.IssueToken(apiKey)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAPIKey) {
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(token)
}
