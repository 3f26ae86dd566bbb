package dto

// Claims holds the identity carried inside an access token.
type Claims struct {
	// Client is the configured name of the API client the token was
	// issued to.
	Client string `json:"client"`
}

// TokenResponse represents the JSON response for a token exchange.
//
// @Description Access token issued for a valid API key
// @Example {"access_token": "eyJhbGciOiJIUzI1NiIs...", "token_type": "Bearer", "expires_in": 900}
type TokenResponse struct {
	// AccessToken is the signed bearer token.
	AccessToken string `json:"access_token"`
	// TokenType is always "Bearer".
	TokenType string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name TokenResponse
