package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
)

// Config represents the CLI configuration stored in $HOME/.dres/config.yml.
type Config struct {
	API            string     `json:"api,omitempty"              yaml:"api,omitempty"`
	APIVersion     int        `json:"api_version,omitempty"      yaml:"api_version,omitempty"`
	Token          string     `json:"token,omitempty"            yaml:"token,omitempty"`
	BearerToken    string     `json:"bearer_token,omitempty"     yaml:"bearer_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	ClientID       string     `json:"client_id,omitempty"        yaml:"client_id,omitempty"`
	ClientSecret   string     `json:"client_secret,omitempty"    yaml:"client_secret,omitempty"`
	Scopes         []string   `json:"scopes,omitempty"           yaml:"scopes,omitempty"`
	Output         string     `json:"output,omitempty"           yaml:"output,omitempty"`
}

// configKeys lists the keys accepted by "config set" and "config unset".
var configKeys = map[string]func(config *Config, value string) error{
	"api": func(config *Config, value string) error {
		config.API = value

		return nil
	},
	"api_version": func(config *Config, value string) error {
		if value == "" {
			config.APIVersion = 0

			return nil
		}

		version, err := strconv.Atoi(value)
		if err != nil || version < 1 {
			return fmt.Errorf("%w: api_version must be a positive integer", constants.ErrInvalidConfigValue)
		}

		config.APIVersion = version

		return nil
	},
	"token": func(config *Config, value string) error {
		config.Token = value

		return nil
	},
	"bearer_token": func(config *Config, value string) error {
		config.BearerToken = value
		config.TokenExpiresAt = nil

		return nil
	},
	"client_id": func(config *Config, value string) error {
		config.ClientID = value

		return nil
	},
	"client_secret": func(config *Config, value string) error {
		config.ClientSecret = value

		return nil
	},
	"scopes": func(config *Config, value string) error {
		config.Scopes = nil

		for _, scope := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' }) {
			config.Scopes = append(config.Scopes, scope)
		}

		return nil
	},
	"output": func(config *Config, value string) error {
		if value != "" {
			err := ValidateOutput(value)
			if err != nil {
				return err
			}
		}

		config.Output = value

		return nil
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the dres configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			masked := *config
			masked.Token = maskSecret(config.Token)
			masked.BearerToken = maskSecret(config.BearerToken)
			masked.ClientSecret = maskSecret(config.ClientSecret)

			return render(cmd.OutOrStdout(), masked, func(table *tablewriter.Table) {
				_ = table.Append("API", valueOrNA(masked.API))
				_ = table.Append("API Version", valueOrNA(intOrEmpty(masked.APIVersion)))
				_ = table.Append("Token", valueOrNA(masked.Token))
				_ = table.Append("Bearer Token", valueOrNA(masked.BearerToken))
				_ = table.Append("Client ID", valueOrNA(masked.ClientID))
				_ = table.Append("Client Secret", valueOrNA(masked.ClientSecret))
				_ = table.Append("Scopes", valueOrNA(strings.Join(masked.Scopes, " ")))
				_ = table.Append("Output", valueOrNA(masked.Output))

				if masked.TokenExpiresAt != nil {
					_ = table.Append("Token Expires", masked.TokenExpiresAt.Format(time.RFC3339))
				}
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: api, api_version, token, bearer_token, client_id, client_secret, scopes, output",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(cmd, "Set", args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(cmd, "Unset", args[0], "")
		},
	}
}

func updateConfig(cmd *cobra.Command, action, key, value string) error {
	setter, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	config := loadConfig()

	err := setter(config, value)
	if err != nil {
		return err
	}

	err = saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	shown := value
	if strings.Contains(key, "token") || strings.Contains(key, "secret") {
		shown = maskSecret(value)
	}

	result := map[string]string{"action": action, "key": key}
	if shown != "" {
		result["value"] = shown
	}

	return render(cmd.OutOrStdout(), result, func(table *tablewriter.Table) {
		_ = table.Append("Action", action)
		_ = table.Append("Key", key)

		if shown != "" {
			_ = table.Append("Value", shown)
		}
	})
}

// loadConfig reads the configuration from viper, which merges the config
// file, DRES_* environment variables and flags.
func loadConfig() *Config {
	config := &Config{
		API:          viper.GetString("api"),
		APIVersion:   viper.GetInt("api_version"),
		Token:        viper.GetString("token"),
		BearerToken:  viper.GetString("bearer_token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		Scopes:       viper.GetStringSlice("scopes"),
		Output:       viper.GetString("output"),
	}

	if expires := viper.GetTime("token_expires_at"); !expires.IsZero() {
		config.TokenExpiresAt = &expires
	}

	return config
}

// configFilePath returns the file viper loaded, or the default location.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

// saveConfigStruct writes config as YAML and reloads it into viper.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	settings := map[string]interface{}{}

	err = yaml.Unmarshal(data, &settings)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	for _, key := range []string{
		"api", "api_version", "token", "bearer_token", "token_expires_at",
		"client_id", "client_secret", "scopes", "output",
	} {
		viper.Set(key, settings[key])
	}

	return nil
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}

	return constants.MaskedSecret
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func intOrEmpty(value int) string {
	if value == 0 {
		return ""
	}

	return strconv.Itoa(value)
}
