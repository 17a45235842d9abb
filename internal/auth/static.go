package auth

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

// StaticTokenManager sends a fixed token with a fixed scheme.
type StaticTokenManager struct {
	scheme string
	token  string
}

// NewBotTokenManager sends "Bot <token>".
func NewBotTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{scheme: constants.SchemeBot, token: token}
}

// NewBearerTokenManager sends "Bearer <token>".
func NewBearerTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{scheme: constants.SchemeBearer, token: token}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.scheme + " " + m.token, nil
}

// RefreshToken implements TokenManager. Static tokens can't be refreshed.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}
