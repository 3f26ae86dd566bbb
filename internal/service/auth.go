package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/John-Mota/production-optimizer-back/config"
	"github.com/John-Mota/production-optimizer-back/internal/domain/dto"
)

var (
	// ErrInvalidAPIKey is returned when the presented API key matches no
	// configured client.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrInvalidToken is returned when token validation fails.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenService exchanges configured API keys for short-lived access tokens
// and validates those tokens on mutating requests.
type TokenService interface {
	// IssueToken validates an API key and returns a signed access token.
	IssueToken(apiKey string) (*dto.TokenResponse, error)
	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// claimsWithJWT couples domain claims with JWT registered claims.
type claimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenServiceImpl implements TokenService using HMAC-signed JWTs.
type TokenServiceImpl struct {
	secretKey []byte
	tokenTTL  time.Duration
	clients   map[string]string // API key to client name
}

// NewTokenService creates a new token service from auth configuration.
func NewTokenService(cfg config.AuthConfig) TokenService {
	clients := make(map[string]string, len(cfg.APIKeys))
	for name, key := range cfg.APIKeys {
		clients[key] = name
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.JWTSecretKey),
		tokenTTL:  cfg.TokenTTL,
		clients:   clients,
	}
}

// IssueToken validates an API key and returns a signed access token.
// Key comparison is constant time.
func (s *TokenServiceImpl) IssueToken(apiKey string) (*dto.TokenResponse, error) {
	client := ""
	for key, name := range s.clients {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			client = name
		}
	}
	if client == "" {
		return nil, ErrInvalidAPIKey
	}

	now := time.Now()
	claims := &claimsWithJWT{
		Claims: dto.Claims{Client: client},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken parses and verifies an access token.
func (s *TokenServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*claimsWithJWT); ok && token.Valid {
		return &claims.Claims, nil
	}
	return nil, ErrInvalidToken
}
