package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials = errors.New("no valid credentials available")
)

// OAuth2Config configures the client_credentials grant.
type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	// AccessToken seeds the manager with a token obtained earlier.
	AccessToken string
	// HTTPClient is used for token requests when set.
	HTTPClient *http.Client
}

// OAuth2TokenManager obtains bearer tokens with the client_credentials grant
// and refreshes them when they expire.
type OAuth2TokenManager struct {
	config *OAuth2Config
	store  *TokenStore
	mu     sync.Mutex
}

// NewOAuth2TokenManager creates a manager. The token URL defaults to
// Discord's token endpoint.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	if config.TokenURL == "" {
		config.TokenURL = constants.DefaultTokenURL
	}

	manager := &OAuth2TokenManager{
		config: config,
		store:  NewTokenStore(),
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken: config.AccessToken,
			TokenType:   constants.SchemeBearer,
		})
	}

	return manager
}

// GetToken implements TokenManager.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return constants.SchemeBearer + " " + token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return constants.SchemeBearer + " " + m.store.Get().AccessToken, nil
}

// RefreshToken implements TokenManager.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return ErrNoCredentials
	}

	grant := &clientcredentials.Config{
		ClientID:     m.config.ClientID,
		ClientSecret: m.config.ClientSecret,
		TokenURL:     m.config.TokenURL,
		Scopes:       m.config.Scopes,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	if m.config.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, m.config.HTTPClient)
	}

	oauthToken, err := grant.Token(ctx)
	if err != nil {
		return fmt.Errorf("requesting client credentials token: %w", err)
	}

	token := &Token{
		AccessToken:  oauthToken.AccessToken,
		TokenType:    oauthToken.Type(),
		RefreshToken: oauthToken.RefreshToken,
		ExpiresAt:    oauthToken.Expiry,
	}

	if scope, ok := oauthToken.Extra("scope").(string); ok {
		token.Scope = scope
	}

	if !token.ExpiresAt.IsZero() {
		token.ExpiresIn = int(time.Until(token.ExpiresAt).Seconds())
	}

	m.store.Set(token)

	return nil
}

// SetToken stores a token obtained elsewhere.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   constants.SchemeBearer,
		ExpiresAt:   expiresAt,
	})
}

// CurrentToken returns the stored token, which may be nil or expired.
func (m *OAuth2TokenManager) CurrentToken() *Token {
	return m.store.Get()
}
