package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	discordhttp "github.com/fivetwenty-io/discord-resource/internal/http"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

func (m *MockTokenManager) RefreshToken(ctx context.Context) error {
	return nil
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/users/@me", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bot test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Contains(t, request.Header.Get("User-Agent"), "DiscordBot")

			response := map[string]string{"id": "80351110224678912", "username": "Nelly"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{token: "Bot test-token"}
		client := discordhttp.NewClient(server.URL, tokenManager)

		req := &discordhttp.Request{
			Method: "GET",
			Path:   "/users/@me",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "80351110224678912", result["id"])
		assert.Equal(t, "Nelly", result["username"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/channels/1/messages", request.URL.Path)
			assert.Equal(t, "limit=50", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL, nil)

		req := &discordhttp.Request{
			Method: "GET",
			Path:   "/channels/1/messages",
			Query:  url.Values{"limit": []string{"50"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "general", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL, nil)

		req := &discordhttp.Request{
			Method: "POST",
			Path:   "/guilds/1/channels",
			Body:   map[string]string{"name": "general"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"code":    10003,
				"message": "Unknown Channel",
			})
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL, nil)

		req := &discordhttp.Request{
			Method: "GET",
			Path:   "/channels/0",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &discord.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 10003, apiErr.Code)
		assert.Equal(t, "Unknown Channel", apiErr.Message)
		assert.True(t, discord.IsNotFound(err))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "spring%20cleaning", request.Header.Get(discord.HeaderAuditLogReason))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL, nil)

		req := &discordhttp.Request{
			Method: "GET",
			Path:   "/gateway",
			Headers: map[string]string{
				discord.HeaderAuditLogReason: "spring%20cleaning",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := discordhttp.NewClient(server.URL, nil, discordhttp.WithLogger(logger), discordhttp.WithDebug(true))

		req := &discordhttp.Request{
			Method: "GET",
			Path:   "/gateway",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

// execute sends a request for route through client.
func execute(client *discordhttp.Client, route discord.Route) (*discord.Response, error) {
	return discord.NewRequest(client, route).Exec(context.Background())
}

func TestClient_ExecuteMethods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		route    discord.Route
		body     bool
		wantPath string
	}{
		{"GET", discord.NewRoute("GetChannel", http.MethodGet, "/channels/{channel_id}",
			discord.P("channel_id", id.NewChannelID(1))), false, "/channels/1"},
		{"POST", discord.NewRoute("CreateMessage", http.MethodPost, "/channels/{channel_id}/messages",
			discord.P("channel_id", id.NewChannelID(1))), true, "/channels/1/messages"},
		{"PUT", discord.NewRoute("CreatePin", http.MethodPut, "/channels/{channel_id}/pins/{message_id}",
			discord.P("channel_id", id.NewChannelID(1)), discord.P("message_id", id.NewMessageID(2))), false, "/channels/1/pins/2"},
		{"PATCH", discord.NewRoute("UpdateChannel", http.MethodPatch, "/channels/{channel_id}",
			discord.P("channel_id", id.NewChannelID(1))), true, "/channels/1"},
		{"DELETE", discord.NewRoute("DeleteChannel", http.MethodDelete, "/channels/{channel_id}",
			discord.P("channel_id", id.NewChannelID(1))), false, "/channels/1"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.name, request.Method)
				assert.Equal(t, testCase.wantPath, request.URL.Path)

				if testCase.body {
					var body map[string]string

					_ = json.NewDecoder(request.Body).Decode(&body)
					assert.Equal(t, "value", body["key"])
				}

				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := discordhttp.NewClient(server.URL, nil)

			req := discord.NewRequest(client, testCase.route)
			if testCase.body {
				req.Field("key", "value")
			}

			resp, err := req.Exec(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL, nil, discordhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := execute(client, discord.NewRoute("Test", http.MethodGet, "/test"))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL, nil, discordhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := execute(client, discord.NewRoute("Test", http.MethodGet, "/test"))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL, nil, discordhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := execute(client, discord.NewRoute("Test", http.MethodGet, "/test"))
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts) // Should not retry
	})
}

type refreshingTokenManager struct {
	token     string
	refreshed int
}

func (m *refreshingTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *refreshingTokenManager) RefreshToken(ctx context.Context) error {
	m.refreshed++
	m.token = "Bearer fresh"

	return nil
}

func TestClient_RefreshesOnUnauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("Authorization") != "Bearer fresh" {
			writer.WriteHeader(http.StatusUnauthorized)

			return
		}

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tokenManager := &refreshingTokenManager{token: "Bearer stale"}
	client := discordhttp.NewClient(server.URL, tokenManager)

	resp, err := execute(client, discord.NewRoute("GetCurrentUser", http.MethodGet, "/users/@me"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 1, tokenManager.refreshed)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Execute(t *testing.T) {
	t.Parallel()

	t.Run("sends route, query, body and reason", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/api/v10/channels/123/messages", request.URL.Path)
			assert.Equal(t, "cleanup", request.Header.Get(discord.HeaderAuditLogReason))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "hello", body["content"])

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "456"})
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL+"/api/v10", nil)
		route := discord.NewRoute("CreateMessage", "POST", "/channels/{channel_id}/messages",
			discord.P("channel_id", id.NewChannelID(123)))

		var message map[string]string

		err := discord.NewRequest(client, route).
			Field("content", "hello").
			Reason("cleanup").
			Into(context.Background(), &message)
		require.NoError(t, err)
		assert.Equal(t, "456", message["id"])
	})

	t.Run("redacts webhook token in logs", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/webhooks/1/s3cr3t", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		logger := &MockLogger{}
		chain := discord.NewInterceptorChain()
		chain.AddRequestInterceptor(discord.LoggingInterceptor(logger))
		chain.AddResponseInterceptor(discord.LoggingResponseInterceptor(logger))

		client := discordhttp.NewClient(server.URL, nil,
			discordhttp.WithLogger(logger),
			discordhttp.WithDebug(true),
			discordhttp.WithInterceptors(chain),
		)
		route := discord.NewRoute("ExecuteWebhook", "POST", "/webhooks/{webhook_id}/{webhook_token}",
			discord.P("webhook_id", id.NewWebhookID(1)),
			discord.SecretP("webhook_token", "s3cr3t"))

		resp, err := discord.NewRequest(client, route).Exec(context.Background())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		require.Len(t, logger.logs, 4)

		for _, entry := range logger.logs {
			fields, _ := entry["fields"].(map[string]interface{})
			path, _ := fields["path"].(string)

			if path != "" {
				assert.NotContains(t, path, "s3cr3t")
			}
		}
	})

	t.Run("returns API error with response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"code": 50013, "message": "Missing Permissions"})
		}))
		defer server.Close()

		client := discordhttp.NewClient(server.URL, nil)
		route := discord.NewRoute("DeleteChannel", "DELETE", "/channels/{channel_id}",
			discord.P("channel_id", id.NewChannelID(9)))

		_, err := discord.NewRequest(client, route).Exec(context.Background())
		require.Error(t, err)
		assert.True(t, discord.IsForbidden(err))
	})

	t.Run("request interceptor error stops the call", func(t *testing.T) {
		t.Parallel()

		called := false

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			called = true
		}))
		defer server.Close()

		chain := discord.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *discord.Request) error {
			return errTestInterceptor
		})

		client := discordhttp.NewClient(server.URL, nil, discordhttp.WithInterceptors(chain))
		route := discord.NewRoute("GetGateway", "GET", "/gateway")

		_, err := discord.NewRequest(client, route).Exec(context.Background())
		require.ErrorIs(t, err, errTestInterceptor)
		assert.False(t, called)
	})
}

var errTestInterceptor = errors.New("blocked")
