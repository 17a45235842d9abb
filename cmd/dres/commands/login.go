package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/discordclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		bearer     bool
		skipVerify bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token",
		Long: `Read a bot token, or an OAuth2 access token with --bearer, verify it against
the API and save it to the configuration file. The token is read from --token,
or prompted for without echo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("token")
			if token == "" {
				var err error

				token, err = readToken(cmd)
				if err != nil {
					return err
				}
			}

			token = strings.TrimSpace(token)
			if token == "" {
				return constants.ErrEmptyTokenProvided
			}

			username := constants.NotAvailable

			if !skipVerify {
				name, err := verifyToken(cmd, token, bearer)
				if err != nil {
					return err
				}

				username = name
			}

			config := loadConfig()
			if bearer {
				config.Token = ""
				config.BearerToken = token
				config.TokenExpiresAt = nil
			} else {
				config.Token = token
			}

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			result := map[string]string{"status": "logged in", "user": username}

			return render(cmd.OutOrStdout(), result, func(table *tablewriter.Table) {
				_ = table.Append("Status", "logged in")
				_ = table.Append("User", username)
			})
		},
	}

	cmd.Flags().BoolVar(&bearer, "bearer", false, "the token is an OAuth2 access token")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save the token without calling the API")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.BearerToken = ""
			config.TokenExpiresAt = nil

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return err
		},
	}
}

func readToken(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd()) // #nosec G115 -- file descriptors fit in int
	if term.IsTerminal(fd) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Token: ")

		token, err := term.ReadPassword(fd)

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return string(token), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return line, nil
}

func verifyToken(cmd *cobra.Command, token string, bearer bool) (string, error) {
	cliConfig := loadConfig()

	config := &discord.Config{
		APIEndpoint: cliConfig.API,
		APIVersion:  cliConfig.APIVersion,
		Logger:      NewLogger(cmd.ErrOrStderr()),
		Debug:       viper.GetBool("verbose"),
	}

	if bearer {
		config.BearerToken = token
	} else {
		config.BotToken = token
	}

	ctx := commandContext(cmd)

	root, err := discordclient.New(ctx, config)
	if err != nil {
		return "", fmt.Errorf("failed to create client: %w", err)
	}

	var user struct {
		Username string `json:"username"`
	}

	err = root.Users().Me().Get().Into(ctx, &user)
	if err != nil {
		return "", fmt.Errorf("failed to verify token: %w", err)
	}

	return user.Username, nil
}
