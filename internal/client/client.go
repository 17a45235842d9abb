package client

import (
	"context"
	"time"

	"github.com/fivetwenty-io/discord-resource/internal/auth"
	"github.com/fivetwenty-io/discord-resource/internal/constants"
	"github.com/fivetwenty-io/discord-resource/internal/http"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
)

// Client implements discord.Transport. Every factory builds a request bound
// to one route; nothing is sent until the request is executed.
type Client struct {
	executor     discord.Executor
	tokenManager auth.TokenManager
	baseURL      string
}

var _ discord.Transport = (*Client)(nil)

// NewWithExecutor creates a transport whose requests run on executor. A nil
// executor yields requests that can be inspected but not executed.
func NewWithExecutor(executor discord.Executor) *Client {
	return &Client{executor: executor}
}

// New creates a transport backed by the HTTP client. baseURL must already
// carry the API version, e.g. "https://discord.com/api/v10".
func New(baseURL string, config *discord.Config) (*Client, error) {
	tokenManager, err := createTokenManager(config)
	if err != nil {
		return nil, err
	}

	return NewWithTokenManager(baseURL, config, tokenManager), nil
}

// NewWithTokenManager creates a transport with a custom token manager.
func NewWithTokenManager(baseURL string, config *discord.Config, tokenManager auth.TokenManager) *Client {
	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	return &Client{
		executor:     httpClient,
		tokenManager: tokenManager,
		baseURL:      httpClient.BaseURL(),
	}
}

// TokenManager returns the token manager for this client.
func (c *Client) TokenManager() auth.TokenManager {
	return c.tokenManager
}

// BaseURL returns the versioned API URL, empty for custom executors.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Refresh forces the token manager to obtain a new token.
func (c *Client) Refresh(ctx context.Context) error {
	if c.tokenManager == nil {
		return nil
	}

	return c.tokenManager.RefreshToken(ctx)
}

func (c *Client) request(name, method, template string, params ...discord.Param) *discord.Request {
	return discord.NewRequest(c.executor, discord.NewRoute(name, method, template, params...))
}

// createTokenManager creates appropriate token manager based on config.
func createTokenManager(config *discord.Config) (auth.TokenManager, error) {
	if config.BotToken != "" && config.BearerToken != "" {
		return nil, discord.ErrConflictingTokens
	}

	if config.BotToken != "" {
		return auth.NewBotTokenManager(config.BotToken), nil
	}

	if config.BearerToken != "" {
		return auth.NewBearerTokenManager(config.BearerToken), nil
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewOAuth2TokenManager(OAuth2Config(config)), nil
	}

	return nil, discord.ErrTokenRequired
}

// OAuth2Config maps the client credentials of config onto the auth package.
func OAuth2Config(config *discord.Config) *auth.OAuth2Config {
	tokenURL := config.TokenURL
	if tokenURL == "" {
		tokenURL = constants.DefaultTokenURL
	}

	return &auth.OAuth2Config{
		TokenURL:     tokenURL,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Scopes:       config.Scopes,
	}
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *discord.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if len(config.RequestInterceptors) > 0 || len(config.ResponseInterceptors) > 0 {
		chain := discord.NewInterceptorChain()

		for _, interceptor := range config.RequestInterceptors {
			chain.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range config.ResponseInterceptors {
			chain.AddResponseInterceptor(interceptor)
		}

		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts
}
