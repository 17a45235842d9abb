package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/discord-resource/internal/auth"
	"github.com/fivetwenty-io/discord-resource/internal/client"
	"github.com/fivetwenty-io/discord-resource/internal/constants"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/discordclient"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// CreateRoot builds the resource tree for a command. With --dry-run the tree
// has no executor and needs no credentials.
func CreateRoot(cmd *cobra.Command) (resource.Root, error) {
	if viper.GetBool("dry-run") {
		return resource.NewRoot(client.NewWithExecutor(nil)), nil
	}

	cliConfig := loadConfig()
	config := buildDiscordConfig(cliConfig, cmd.ErrOrStderr())

	if config.BotToken == "" && usesClientCredentials(cliConfig) {
		return createClientCredentialsRoot(cliConfig, config)
	}

	if config.BotToken == "" && config.BearerToken == "" {
		return resource.Root{}, constants.ErrNoTokenConfigured
	}

	root, err := discordclient.New(commandContext(cmd), config)
	if err != nil {
		return resource.Root{}, fmt.Errorf("failed to create client: %w", err)
	}

	return root, nil
}

func buildDiscordConfig(cliConfig *Config, logOutput io.Writer) *discord.Config {
	logger := NewLogger(logOutput)
	verbose := viper.GetBool("verbose")

	config := &discord.Config{
		APIEndpoint:  cliConfig.API,
		APIVersion:   cliConfig.APIVersion,
		BotToken:     cliConfig.Token,
		ClientID:     cliConfig.ClientID,
		ClientSecret: cliConfig.ClientSecret,
		Scopes:       cliConfig.Scopes,
		Debug:        verbose,
		Logger:       logger,
		RetryMax:     constants.DefaultRetryMax,
	}

	if cliConfig.Token == "" && !usesClientCredentials(cliConfig) {
		config.BearerToken = cliConfig.BearerToken
	}

	if verbose {
		config.RequestInterceptors = append(config.RequestInterceptors, discord.LoggingInterceptor(logger))
		config.ResponseInterceptors = append(config.ResponseInterceptors, discord.LoggingResponseInterceptor(logger))
	}

	if reason := viper.GetString("reason"); reason != "" {
		config.RequestInterceptors = append(config.RequestInterceptors, discord.ReasonInterceptor(reason))
	}

	return config
}

func usesClientCredentials(cliConfig *Config) bool {
	return cliConfig.ClientID != "" && cliConfig.ClientSecret != ""
}

// createClientCredentialsRoot reuses the bearer token saved by a previous run
// and persists every token the client credentials grant returns.
func createClientCredentialsRoot(cliConfig *Config, config *discord.Config) (resource.Root, error) {
	baseURL, err := discordclient.BaseURL(config)
	if err != nil {
		return resource.Root{}, err
	}

	var expiry time.Time
	if cliConfig.TokenExpiresAt != nil {
		expiry = *cliConfig.TokenExpiresAt
	}

	tokenManager := auth.NewConfigTokenManager(client.OAuth2Config(config), NewConfigPersister(), cliConfig.BearerToken, expiry)

	return resource.NewRoot(client.NewWithTokenManager(baseURL, config, tokenManager)), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
