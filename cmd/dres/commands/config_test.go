package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
)

// useTempConfig points viper at an empty config file in a temp dir.
func useTempConfig(t *testing.T) string {
	t.Helper()

	resetViper(t)

	configFile := filepath.Join(t.TempDir(), constants.ConfigFileName)
	require.NoError(t, os.WriteFile(configFile, nil, constants.ConfigFilePerm))

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yml")
	require.NoError(t, viper.ReadInConfig())

	viper.Set("output", "json")

	return configFile
}

func readConfigFile(t *testing.T, configFile string) Config {
	t.Helper()

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var config Config

	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestConfigSet(t *testing.T) {
	configFile := useTempConfig(t)

	output, err := runCommand(t, NewConfigCommand(), "set", "token", "bot-token")
	require.NoError(t, err)
	assert.Contains(t, output, constants.MaskedSecret)
	assert.NotContains(t, output, "bot-token")

	_, err = runCommand(t, NewConfigCommand(), "set", "api_version", "9")
	require.NoError(t, err)

	config := readConfigFile(t, configFile)
	assert.Equal(t, "bot-token", config.Token)
	assert.Equal(t, 9, config.APIVersion)
	assert.Equal(t, "bot-token", viper.GetString("token"))
}

func TestConfigSet_Rejects(t *testing.T) {
	useTempConfig(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown key", []string{"set", "colour", "blue"}, constants.ErrUnknownConfigKey},
		{"bad version", []string{"set", "api_version", "zero"}, constants.ErrInvalidConfigValue},
		{"bad output", []string{"set", "output", "xml"}, constants.ErrInvalidOutput},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := runCommand(t, NewConfigCommand(), testCase.args...)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestConfigUnset(t *testing.T) {
	configFile := useTempConfig(t)

	_, err := runCommand(t, NewConfigCommand(), "set", "client_id", "app")
	require.NoError(t, err)

	_, err = runCommand(t, NewConfigCommand(), "unset", "client_id")
	require.NoError(t, err)

	assert.Empty(t, readConfigFile(t, configFile).ClientID)
}

func TestConfigPersister_UpdateBearerToken(t *testing.T) {
	configFile := useTempConfig(t)

	expiresAt := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, NewConfigPersister().UpdateBearerToken("cc-token", expiresAt))

	config := readConfigFile(t, configFile)
	assert.Equal(t, "cc-token", config.BearerToken)
	require.NotNil(t, config.TokenExpiresAt)
	assert.True(t, expiresAt.Equal(*config.TokenExpiresAt))
}

func TestLogout(t *testing.T) {
	configFile := useTempConfig(t)

	_, err := runCommand(t, NewConfigCommand(), "set", "token", "bot-token")
	require.NoError(t, err)

	_, err = runCommand(t, NewLogoutCommand())
	require.NoError(t, err)

	assert.Empty(t, readConfigFile(t, configFile).Token)
}

func TestLogin_SkipVerify(t *testing.T) {
	configFile := useTempConfig(t)
	viper.Set("token", "  bot-token\n")

	_, err := runCommand(t, NewLoginCommand(), "--skip-verify")
	require.NoError(t, err)

	assert.Equal(t, "bot-token", readConfigFile(t, configFile).Token)
}

func TestLogin_EmptyToken(t *testing.T) {
	useTempConfig(t)
	viper.Set("token", "   ")

	_, err := runCommand(t, NewLoginCommand(), "--skip-verify")
	require.ErrorIs(t, err, constants.ErrEmptyTokenProvided)
}
