package auth

import (
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
)

// Token is an access token minted by an identity backend.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

// Valid reports whether the token is non-empty and not about to expire.
// Tokens without an expiry are considered valid.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationBuffer).Before(t.ExpiresAt)
}

// TokenStore holds the current token of a credential provider.
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token or nil.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// FromOAuth2 converts an oauth2 token.
func FromOAuth2(token *oauth2.Token) *Token {
	if token == nil {
		return nil
	}

	return &Token{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.Expiry,
	}
}

// tokenResponse is the JSON body returned by token and metadata endpoints.
// expires_in is a number on some backends and a numeric string on others.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   json.Number `json:"expires_in"`
}

func (r *tokenResponse) token(now time.Time) *Token {
	token := &Token{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
	}

	seconds, err := r.ExpiresIn.Int64()
	if err == nil && seconds > 0 {
		token.ExpiresAt = now.Add(time.Duration(seconds) * time.Second)
	}

	return token
}
