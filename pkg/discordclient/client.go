package discordclient

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/discord-resource/internal/client"
	"github.com/fivetwenty-io/discord-resource/internal/constants"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// New creates a resource tree backed by the Discord REST API.
//
// When client credentials are configured the first bearer token is fetched
// eagerly using ctx, so bad credentials fail here rather than on the first
// request.
func New(ctx context.Context, config *discord.Config) (resource.Root, error) {
	if config == nil {
		return resource.Root{}, discord.ErrConfigRequired
	}

	baseURL, err := BaseURL(config)
	if err != nil {
		return resource.Root{}, err
	}

	transport, err := client.New(baseURL, config)
	if err != nil {
		return resource.Root{}, fmt.Errorf("failed to create new client: %w", err)
	}

	if needsTokenExchange(config) {
		err = transport.Refresh(ctx)
		if err != nil {
			return resource.Root{}, fmt.Errorf("obtaining client credentials token: %w", err)
		}
	}

	return resource.NewRoot(transport), nil
}

// NewWithBotToken creates a resource tree authenticated as a bot.
func NewWithBotToken(ctx context.Context, token string) (resource.Root, error) {
	return New(ctx, &discord.Config{BotToken: token})
}

// NewWithBearerToken creates a resource tree authenticated with an OAuth2
// access token.
func NewWithBearerToken(ctx context.Context, token string) (resource.Root, error) {
	return New(ctx, &discord.Config{BearerToken: token})
}

// NewWithClientCredentials creates a resource tree that authenticates with the
// OAuth2 client_credentials grant.
func NewWithClientCredentials(ctx context.Context, clientID, clientSecret string, scopes ...string) (resource.Root, error) {
	return New(ctx, &discord.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       scopes,
	})
}

var versionSuffix = regexp.MustCompile(`/v([0-9]+)$`)

// BaseURL returns the versioned API URL requests are sent to, for example
// "https://discord.com/api/v10". An endpoint that already ends in a version
// segment keeps that version unless APIVersion is set.
func BaseURL(config *discord.Config) (string, error) {
	if config == nil {
		return "", discord.ErrConfigRequired
	}

	endpoint := strings.TrimSpace(config.APIEndpoint)
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("%w: invalid endpoint %q", discord.ErrAPIEndpointRequired, config.APIEndpoint)
	}

	version := config.APIVersion

	if match := versionSuffix.FindStringSubmatch(endpoint); match != nil {
		endpoint = strings.TrimSuffix(endpoint, match[0])

		if version == 0 {
			version, _ = strconv.Atoi(match[1])
		}
	}

	if version == 0 {
		version = constants.DefaultAPIVersion
	}

	if version < 0 {
		return "", fmt.Errorf("%w: %d", discord.ErrInvalidAPIVersion, version)
	}

	return endpoint + "/v" + strconv.Itoa(version), nil
}

func needsTokenExchange(config *discord.Config) bool {
	return config.BotToken == "" && config.BearerToken == "" &&
		config.ClientID != "" && config.ClientSecret != ""
}
