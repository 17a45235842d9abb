package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// CLI configuration.
const (
	// ConfigDirName is the configuration directory under $HOME.
	ConfigDirName = ".dres"

	// ConfigFileName is the configuration file inside ConfigDirName.
	ConfigFileName = "config.yml"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "DRES"

	// MinimumArgumentCount is the argument count of KEY VALUE commands.
	MinimumArgumentCount = 2
)

// API endpoints.
const (
	// DefaultAPIEndpoint is the public REST API base URL, without version.
	DefaultAPIEndpoint = "https://discord.com/api"

	// DefaultAPIVersion is the REST API version requests are sent to.
	DefaultAPIVersion = 10

	// DefaultTokenURL is the OAuth2 token endpoint.
	DefaultTokenURL = "https://discord.com/api/oauth2/token"

	// DefaultUserAgent follows the API's required "DiscordBot (url, version)" form.
	DefaultUserAgent = "DiscordBot (https://github.com/fivetwenty-io/discord-resource, 1.0.0)"
)

// Authorization schemes.
const (
	// SchemeBot prefixes bot tokens.
	SchemeBot = "Bot"

	// SchemeBearer prefixes OAuth2 access tokens.
	SchemeBearer = "Bearer"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Client-side validation limits, as documented by the API.
const (
	// GuildNameMin and GuildNameMax bound guild names.
	GuildNameMin = 2
	GuildNameMax = 100

	// ChannelNameMin and ChannelNameMax bound guild channel names.
	ChannelNameMin = 1
	ChannelNameMax = 100

	// WebhookNameMin and WebhookNameMax bound webhook names.
	WebhookNameMin = 1
	WebhookNameMax = 80

	// TemplateNameMin and TemplateNameMax bound template names.
	TemplateNameMin = 1
	TemplateNameMax = 100

	// NicknameMin and NicknameMax bound member nicknames.
	NicknameMin = 1
	NicknameMax = 32

	// SearchQueryMin and SearchQueryMax bound member search queries.
	SearchQueryMin = 1
	SearchQueryMax = 100

	// BulkDeleteMin and BulkDeleteMax bound bulk message deletion.
	BulkDeleteMin = 2
	BulkDeleteMax = 100
)

// WebhookForbiddenNames may not appear in a webhook name, in any case.
var WebhookForbiddenNames = []string{"clyde", "discord"}

// Format constants.
const (
	// FormatJSON is the JSON output format.
	FormatJSON = "json"

	// FormatYAML is the YAML output format.
	FormatYAML = "yaml"

	// FormatTable is the table output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is shown for missing values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in output.
	MaskedSecret = "***"
)
