package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

func parseSnowflake(kind, value string) (uint64, error) {
	snowflake, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", constants.ErrInvalidIdentifier, kind, value)
	}

	return snowflake, nil
}

func parseChannelID(value string) (id.ChannelID, error) {
	v, err := parseSnowflake("channel", value)

	return id.NewChannelID(v), err
}

func parseGuildID(value string) (id.GuildID, error) {
	v, err := parseSnowflake("guild", value)

	return id.NewGuildID(v), err
}

func parseMessageID(value string) (id.MessageID, error) {
	v, err := parseSnowflake("message", value)

	return id.NewMessageID(v), err
}

func parseUserID(value string) (id.UserID, error) {
	v, err := parseSnowflake("user", value)

	return id.NewUserID(v), err
}

func parseWebhookID(value string) (id.WebhookID, error) {
	v, err := parseSnowflake("webhook", value)

	return id.NewWebhookID(v), err
}

func parseMessageIDs(values []string) ([]id.MessageID, error) {
	ids := make([]id.MessageID, 0, len(values))

	for _, value := range values {
		messageID, err := parseMessageID(value)
		if err != nil {
			return nil, err
		}

		ids = append(ids, messageID)
	}

	return ids, nil
}

// parseReaction turns --emoji or --custom-emoji NAME:ID into a reaction.
func parseReaction(emoji, custom string) (discord.ReactionType, error) {
	switch {
	case emoji != "" && custom != "":
		return discord.ReactionType{}, constants.ErrEmojiAndCustomEmoji
	case emoji != "":
		return discord.UnicodeReaction(emoji), nil
	case custom == "":
		return discord.ReactionType{}, constants.ErrEmojiRequired
	}

	name, rawID, found := strings.Cut(custom, ":")
	if !found {
		return discord.ReactionType{}, constants.ErrInvalidCustomEmoji
	}

	emojiID, err := parseSnowflake("emoji", rawID)
	if err != nil {
		return discord.ReactionType{}, fmt.Errorf("%w: %w", constants.ErrInvalidCustomEmoji, err)
	}

	return discord.CustomReaction(name, id.NewEmojiID(emojiID)), nil
}
