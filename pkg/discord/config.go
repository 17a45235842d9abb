package discord

import "time"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a resource tree.
//
// # Authentication precedence
//
//  1. BotToken: sent as "Authorization: Bot <token>".
//  2. BearerToken: an OAuth2 access token sent as "Authorization: Bearer <token>".
//  3. ClientID/ClientSecret: the OAuth2 client_credentials grant is used to
//     obtain and refresh a bearer token for the configured Scopes.
//
// Setting both BotToken and BearerToken is an error.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to
// Request.Exec. Retry behavior for 429 and 5xx responses can be tuned via
// RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// APIEndpoint: base URL of the API, e.g. "https://discord.com/api".
	// discordclient.New adds "https://" when no scheme is present and trims a
	// trailing slash. Defaults to the public endpoint.
	APIEndpoint string
	// APIVersion: API version appended to the endpoint. Defaults to 10.
	APIVersion int

	// BotToken: a bot token, without the "Bot " prefix.
	BotToken string
	// BearerToken: an OAuth2 access token, without the "Bearer " prefix.
	BearerToken string
	// ClientID: OAuth2 application ID for the client_credentials grant.
	ClientID string
	// ClientSecret: OAuth2 application secret used with ClientID.
	ClientSecret string
	// Scopes: OAuth2 scopes requested with the client_credentials grant.
	Scopes []string
	// TokenURL: OAuth2 token endpoint. Defaults to the public endpoint.
	TokenURL string

	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout: timeout of the underlying HTTP client.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for 429, 5xx and connection errors.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// RequestInterceptors run, in order, before every request is sent.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run, in order, after every response is received.
	ResponseInterceptors []ResponseInterceptor
}
