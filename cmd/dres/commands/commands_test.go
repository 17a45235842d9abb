package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cmd         *cobra.Command
		use         string
		aliases     []string
		subcommands []string
	}{
		{"channels", NewChannelsCommand(), "channels", []string{"channel", "ch"},
			[]string{"get", "delete", "typing", "messages", "pins", "reactions", "webhooks"}},
		{"guilds", NewGuildsCommand(), "guilds", nil,
			[]string{"get", "create", "delete", "bans", "members", "roles", "channels", "templates", "prune"}},
		{"users", NewUsersCommand(), "users", nil,
			[]string{"get", "me", "guilds", "leave", "dm"}},
		{"webhooks", NewWebhooksCommand(), "webhooks", []string{"webhook", "wh"},
			[]string{"get", "execute"}},
		{"config", NewConfigCommand(), "config", nil,
			[]string{"show", "set", "unset"}},
		{"invites", NewInvitesCommand(), "invites", nil,
			[]string{"get", "delete"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.use, testCase.cmd.Use)
			assert.NotEmpty(t, testCase.cmd.Short)

			for _, alias := range testCase.aliases {
				assert.Contains(t, testCase.cmd.Aliases, alias)
			}

			for _, name := range testCase.subcommands {
				assert.NotNil(t, findSubcommand(testCase.cmd, name), "missing subcommand %q", name)
			}
		})
	}
}

func TestChannelMessagesCommand_Flags(t *testing.T) {
	t.Parallel()

	messages := findSubcommand(NewChannelsCommand(), "messages")
	require.NotNil(t, messages)

	for _, name := range []string{"list", "get", "send", "delete", "bulk-delete", "crosspost"} {
		assert.NotNil(t, findSubcommand(messages, name), "missing subcommand %q", name)
	}

	list := findSubcommand(messages, "list")
	assert.NotNil(t, list.Flags().Lookup("limit"))

	send := findSubcommand(messages, "send")
	assert.NotNil(t, send.Flags().Lookup("content"))
	assert.NotNil(t, send.Flags().Lookup("tts"))
}

func TestReactionsCommand_Flags(t *testing.T) {
	t.Parallel()

	reactions := findSubcommand(NewChannelsCommand(), "reactions")
	require.NotNil(t, reactions)

	for _, name := range []string{"list", "add", "clear"} {
		sub := findSubcommand(reactions, name)
		require.NotNil(t, sub, "missing subcommand %q", name)
		assert.NotNil(t, sub.Flags().Lookup("emoji"))
		assert.NotNil(t, sub.Flags().Lookup("custom-emoji"))
	}
}

func TestLoginCommand(t *testing.T) {
	t.Parallel()

	cmd := NewLoginCommand()

	assert.Equal(t, "login", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("bearer"))
	assert.NotNil(t, cmd.Flags().Lookup("skip-verify"))
}
