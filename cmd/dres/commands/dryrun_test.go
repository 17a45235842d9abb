package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
)

func TestDryRun_SingleRequest(t *testing.T) {
	setDryRun(t)

	output, err := runCommand(t, NewChannelsCommand(), "messages", "get", "123", "456")
	require.NoError(t, err)

	dryRuns := decodeDryRuns(t, output)
	require.Len(t, dryRuns, 1)

	assert.Equal(t, "GetMessage", dryRuns[0].Operation)
	assert.Equal(t, "GET", dryRuns[0].Method)
	assert.Equal(t, "/channels/123/messages/456", dryRuns[0].Path)
	assert.Equal(t, map[string]string{"channel_id": "123", "message_id": "456"}, dryRuns[0].Params)
	assert.Nil(t, dryRuns[0].Body)
}

func TestDryRun_Commands(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		operation string
		method    string
		path      string
	}{
		{"channel get", []string{"channels", "get", "5"}, "GetChannel", "GET", "/channels/5"},
		{"ban", []string{"guilds", "bans", "add", "10", "20"}, "CreateBan", "PUT", "/guilds/10/bans/20"},
		{"reaction", []string{"channels", "reactions", "add", "1", "2", "--custom-emoji", "party:77"},
			"CreateReaction", "PUT", "/channels/1/messages/2/reactions/party:77/@me"},
		{"clear reactions", []string{"channels", "reactions", "clear", "1", "2"},
			"DeleteAllReactions", "DELETE", "/channels/1/messages/2/reactions"},
		{"current user", []string{"users", "me"}, "GetCurrentUser", "GET", "/users/@me"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			setDryRun(t)

			var (
				output string
				err    error
			)

			switch testCase.args[0] {
			case "channels":
				output, err = runCommand(t, NewChannelsCommand(), testCase.args[1:]...)
			case "guilds":
				output, err = runCommand(t, NewGuildsCommand(), testCase.args[1:]...)
			case "users":
				output, err = runCommand(t, NewUsersCommand(), testCase.args[1:]...)
			}

			require.NoError(t, err)

			dryRuns := decodeDryRuns(t, output)
			require.Len(t, dryRuns, 1)
			assert.Equal(t, testCase.operation, dryRuns[0].Operation)
			assert.Equal(t, testCase.method, dryRuns[0].Method)
			assert.Equal(t, testCase.path, dryRuns[0].Path)
		})
	}
}

func TestDryRun_NicknameReset(t *testing.T) {
	setDryRun(t)

	output, err := runCommand(t, NewGuildsCommand(), "members", "nick", "10")
	require.NoError(t, err)

	dryRuns := decodeDryRuns(t, output)
	require.Len(t, dryRuns, 1)
	assert.Equal(t, "/guilds/10/members/@me", dryRuns[0].Path)
	assert.Equal(t, map[string]interface{}{"nick": nil}, dryRuns[0].Body)
}

func TestDryRun_Reason(t *testing.T) {
	setDryRun(t)
	viper.Set("reason", "cleanup")

	output, err := runCommand(t, NewGuildsCommand(), "bans", "add", "10", "20")
	require.NoError(t, err)

	dryRuns := decodeDryRuns(t, output)
	require.Len(t, dryRuns, 1)
	assert.Equal(t, "cleanup", dryRuns[0].Reason)
}

func TestDryRun_ReasonIsShownUnescaped(t *testing.T) {
	setDryRun(t)
	viper.Set("reason", "spring cleaning")

	output, err := runCommand(t, NewChannelsCommand(), "delete", "5")
	require.NoError(t, err)
	assert.NotContains(t, output, "spring%20cleaning")

	dryRuns := decodeDryRuns(t, output)
	require.Len(t, dryRuns, 1)
	assert.Equal(t, "spring cleaning", dryRuns[0].Reason)
}

func TestDryRun_ReasonSkippedForReads(t *testing.T) {
	setDryRun(t)
	viper.Set("reason", "cleanup")

	output, err := runCommand(t, NewChannelsCommand(), "get", "5")
	require.NoError(t, err)

	dryRuns := decodeDryRuns(t, output)
	require.Len(t, dryRuns, 1)
	assert.Empty(t, dryRuns[0].Reason)
}

func TestDryRun_WebhookTokenRedacted(t *testing.T) {
	setDryRun(t)

	output, err := runCommand(t, NewWebhooksCommand(), "execute", "1", "s3cr3t", "--content", "hello")
	require.NoError(t, err)
	assert.NotContains(t, output, "s3cr3t")

	dryRuns := decodeDryRuns(t, output)
	require.Len(t, dryRuns, 1)
	assert.Equal(t, "ExecuteWebhook", dryRuns[0].Operation)
	assert.Equal(t, "/webhooks/1/[redacted]", dryRuns[0].Path)
	assert.Equal(t, map[string]interface{}{"content": "hello"}, dryRuns[0].Body)
}

func TestDryRun_MultipleArguments(t *testing.T) {
	setDryRun(t)

	output, err := runCommand(t, NewChannelsCommand(), "messages", "delete", "1", "2", "3")
	require.NoError(t, err)

	dryRuns := decodeDryRuns(t, output)
	require.Len(t, dryRuns, 2)
	assert.Equal(t, "/channels/1/messages/2", dryRuns[0].Path)
	assert.Equal(t, "/channels/1/messages/3", dryRuns[1].Path)
}

func TestDryRun_MultipleArgumentsReportsEveryFailure(t *testing.T) {
	setDryRun(t)

	output, err := runCommand(t, NewChannelsCommand(), "messages", "delete", "1", "x", "2", "y")
	require.Error(t, err)
	require.ErrorIs(t, err, constants.ErrInvalidIdentifier)
	assert.Contains(t, err.Error(), "x: ")
	assert.Contains(t, err.Error(), "y: ")

	dryRuns := decodeDryRuns(t, output)
	require.Len(t, dryRuns, 1)
	assert.Equal(t, "/channels/1/messages/2", dryRuns[0].Path)
}

func TestDryRun_ValidationError(t *testing.T) {
	setDryRun(t)

	output, err := runCommand(t, NewChannelsCommand(), "webhooks", "create", "1", "")
	require.Error(t, err)
	assert.True(t, discord.IsValidation(err))
	assert.Empty(t, output)
}

func TestDryRun_InvalidIdentifier(t *testing.T) {
	setDryRun(t)

	_, err := runCommand(t, NewChannelsCommand(), "messages", "get", "abc", "1")
	require.ErrorIs(t, err, constants.ErrInvalidIdentifier)
}

func TestDryRun_TableOutput(t *testing.T) {
	setDryRun(t)
	viper.Set("output", "table")

	output, err := runCommand(t, NewChannelsCommand(), "get", "5")
	require.NoError(t, err)
	assert.Contains(t, output, "GetChannel")
	assert.Contains(t, output, "/channels/5")
}

func TestCreateRoot_NoToken(t *testing.T) {
	resetViper(t)

	_, err := runCommand(t, NewChannelsCommand(), "get", "5")
	require.ErrorIs(t, err, constants.ErrNoTokenConfigured)
}
