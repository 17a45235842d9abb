package validate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/discord-resource/internal/validate"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgo="

func requireValidationError(t *testing.T, err error, operation, field string) {
	t.Helper()

	require.Error(t, err)

	var validationErr *discord.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, operation, validationErr.Operation)
	assert.Equal(t, field, validationErr.Field)
}

func TestNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		check   func(operation, value string) error
		value   string
		wantErr bool
	}{
		{"guild name ok", validate.GuildName, "my guild", false},
		{"guild name too short", validate.GuildName, "a", true},
		{"guild name too long", validate.GuildName, strings.Repeat("a", 101), true},
		{"guild name empty", validate.GuildName, "", true},
		{"channel name ok", validate.ChannelName, "g", false},
		{"channel name empty", validate.ChannelName, "", true},
		{"channel name too long", validate.ChannelName, strings.Repeat("c", 101), true},
		{"webhook name ok", validate.WebhookName, "deploys", false},
		{"webhook name max runes", validate.WebhookName, strings.Repeat("é", 80), false},
		{"webhook name too long", validate.WebhookName, strings.Repeat("w", 81), true},
		{"webhook name empty", validate.WebhookName, "", true},
		{"webhook name clyde", validate.WebhookName, "my Clyde bot", true},
		{"webhook name discord", validate.WebhookName, "my DISCORD hook", true},
		{"webhook name discord prefix", validate.WebhookName, "discordia", true},
		{"template name ok", validate.TemplateName, "base", false},
		{"template name too long", validate.TemplateName, strings.Repeat("t", 101), true},
		{"nickname ok", validate.Nickname, "nick", false},
		{"nickname too long", validate.Nickname, strings.Repeat("n", 33), true},
		{"nickname reset", validate.Nickname, "", false},
		{"search query ok", validate.SearchQuery, "ab", false},
		{"search query empty", validate.SearchQuery, "", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.check("Op", testCase.value)
			if testCase.wantErr {
				require.Error(t, err)
				assert.True(t, discord.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWebhookName_ForbiddenWords(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"CLYDE", "Discord Alerts"} {
		err := validate.WebhookName("CreateWebhook", name)
		requireValidationError(t, err, "CreateWebhook", "name")
		assert.ErrorIs(t, err, validate.ErrForbiddenWebhookName)
	}
}

func TestTemplateCode(t *testing.T) {
	t.Parallel()

	require.NoError(t, validate.TemplateCode("CreateGuildFromTemplate", id.NewTemplateCode("hgM48av5Q69A")))
	requireValidationError(t, validate.TemplateCode("CreateGuildFromTemplate", id.NewTemplateCode("")),
		"CreateGuildFromTemplate", "template_code")
}

func TestEmoji(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validate.Emoji("CreateEmoji", "party_parrot", pngDataURI))
	})

	t.Run("bad name", func(t *testing.T) {
		t.Parallel()
		requireValidationError(t, validate.Emoji("CreateEmoji", "party parrot", pngDataURI), "CreateEmoji", "name")
	})

	t.Run("short name", func(t *testing.T) {
		t.Parallel()
		requireValidationError(t, validate.Emoji("CreateEmoji", "p", pngDataURI), "CreateEmoji", "name")
	})

	t.Run("missing image", func(t *testing.T) {
		t.Parallel()
		requireValidationError(t, validate.Emoji("CreateEmoji", "party_parrot", ""), "CreateEmoji", "image")
	})

	t.Run("image not a data uri", func(t *testing.T) {
		t.Parallel()
		requireValidationError(t, validate.Emoji("CreateEmoji", "party_parrot", "https://example.com/a.png"), "CreateEmoji", "image")
	})
}

func TestMessageIDs(t *testing.T) {
	t.Parallel()

	hundred := make([]id.MessageID, 100)
	for i := range hundred {
		hundred[i] = id.NewMessageID(uint64(i + 1))
	}

	tests := []struct {
		name    string
		ids     []id.MessageID
		wantErr bool
	}{
		{"nil", nil, true},
		{"one", []id.MessageID{1}, true},
		{"two", []id.MessageID{1, 2}, false},
		{"hundred", hundred, false},
		{"hundred and one", append(append([]id.MessageID{}, hundred...), 101), true},
		{"zero id", []id.MessageID{1, 0}, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := validate.MessageIDs("DeleteMessages", testCase.ids)
			if testCase.wantErr {
				requireValidationError(t, err, "DeleteMessages", "messages")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		emoji   discord.ReactionType
		wantErr bool
	}{
		{"unicode emoji", discord.UnicodeReaction("👍"), false},
		{"unicode text", discord.UnicodeReaction("thumbsup"), true},
		{"unicode empty", discord.UnicodeReaction(""), true},
		{"emoji with text", discord.UnicodeReaction("👍 yes"), true},
		{"two emoji", discord.UnicodeReaction("👍👍"), true},
		{"two emoji with space", discord.UnicodeReaction("👍 👍"), true},
		{"padded emoji", discord.UnicodeReaction(" 👍"), true},
		{"skin tone", discord.UnicodeReaction("👍🏽"), false},
		{"flag", discord.UnicodeReaction("🇯🇵"), false},
		{"custom", discord.CustomReaction("party_parrot", id.NewEmojiID(41771983429993937)), false},
		{"custom without id", discord.CustomReaction("party_parrot", id.NewEmojiID(0)), true},
		{"custom bad name", discord.CustomReaction("party-parrot", id.NewEmojiID(1)), true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Reaction("CreateReaction", testCase.emoji)
			if testCase.wantErr {
				requireValidationError(t, err, "CreateReaction", "emoji")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
