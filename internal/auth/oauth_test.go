package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
)

func newTokenServer(t *testing.T, accessToken string, calls *int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)

		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", username)
		assert.Equal(t, "client-secret", password)

		err := r.ParseForm()
		assert.NoError(t, err)
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": accessToken,
			"token_type":   "Bearer",
			"expires_in":   604800,
			"scope":        r.Form.Get("scope"),
		})
	}))
}

func TestOAuth2TokenManager_GetToken(t *testing.T) {
	t.Parallel()

	t.Run("returns existing valid token", func(t *testing.T) {
		t.Parallel()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			AccessToken: "existing-token",
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer existing-token", token)
	})

	t.Run("uses client credentials", func(t *testing.T) {
		t.Parallel()

		var calls int32

		server := newTokenServer(t, "client-token", &calls)
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL + "/oauth2/token",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Scopes:       []string{"identify", "guilds"},
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer client-token", token)
		assert.Equal(t, "identify guilds", manager.CurrentToken().Scope)

		_, err = manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("refreshes expired token", func(t *testing.T) {
		t.Parallel()

		var calls int32

		server := newTokenServer(t, "new-token", &calls)
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL + "/oauth2/token",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		})
		manager.SetToken("expired-token", time.Now().Add(-1*time.Hour))

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer new-token", token)
	})

	t.Run("handles token request error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "Client authentication failed",
			})
		}))
		defer server.Close()

		manager := NewOAuth2TokenManager(&OAuth2Config{
			TokenURL:     server.URL + "/oauth2/token",
			ClientID:     "bad-client",
			ClientSecret: "bad-secret",
		})

		token, err := manager.GetToken(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_client")
		assert.Empty(t, token)
	})

	t.Run("no credentials available", func(t *testing.T) {
		t.Parallel()

		manager := NewOAuth2TokenManager(&OAuth2Config{})

		token, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ErrNoCredentials)
		assert.Empty(t, token)
	})
}

func TestNewOAuth2TokenManager_DefaultTokenURL(t *testing.T) {
	t.Parallel()

	manager := NewOAuth2TokenManager(&OAuth2Config{ClientID: "id", ClientSecret: "secret"})
	assert.Equal(t, constants.DefaultTokenURL, manager.config.TokenURL)
}

func TestOAuth2TokenManager_SetToken(t *testing.T) {
	t.Parallel()

	manager := NewOAuth2TokenManager(&OAuth2Config{})

	expiresAt := time.Now().Add(1 * time.Hour)
	manager.SetToken("manual-token", expiresAt)

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer manual-token", token)

	storedToken := manager.store.Get()
	assert.Equal(t, "manual-token", storedToken.AccessToken)
	assert.Equal(t, expiresAt.Unix(), storedToken.ExpiresAt.Unix())
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	bot, err := NewBotTokenManager("abc").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bot abc", bot)

	bearer, err := NewBearerTokenManager("xyz").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer xyz", bearer)

	assert.ErrorIs(t, NewBotTokenManager("abc").RefreshToken(context.Background()), ErrStaticTokenCannotRefresh)
}

type recordingPersister struct {
	tokens []string
}

func (p *recordingPersister) UpdateBearerToken(token string, expiresAt time.Time) error {
	p.tokens = append(p.tokens, token)

	return nil
}

func TestConfigTokenManager(t *testing.T) {
	t.Parallel()

	t.Run("persists new tokens once", func(t *testing.T) {
		t.Parallel()

		var calls int32

		server := newTokenServer(t, "fresh-token", &calls)
		defer server.Close()

		persister := &recordingPersister{}
		manager := NewConfigTokenManager(&OAuth2Config{
			TokenURL:     server.URL + "/oauth2/token",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		}, persister, "", time.Time{})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer fresh-token", token)

		_, err = manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"fresh-token"}, persister.tokens)
	})

	t.Run("reuses initial token without persisting", func(t *testing.T) {
		t.Parallel()

		persister := &recordingPersister{}
		manager := NewConfigTokenManager(&OAuth2Config{}, persister, "saved-token", time.Now().Add(time.Hour))

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer saved-token", token)
		assert.Empty(t, persister.tokens)
	})
}
