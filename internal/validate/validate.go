// Package validate holds the client-side checks run by validated request
// factories. Every check returns nil or a *discord.ValidationError.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rivo/uniseg"

	"github.com/fivetwenty-io/discord-resource/internal/constants"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// Static errors for err113 compliance.
var (
	ErrForbiddenWebhookName = errors.New("must not contain a reserved word")
	ErrNotAnEmoji           = errors.New("must be a single unicode emoji")
	ErrCustomEmojiID        = errors.New("custom emoji must have an id")
)

var emojiNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{2,32}$`)

func wrap(operation, field string, err error) error {
	if err == nil {
		return nil
	}

	return &discord.ValidationError{Operation: operation, Field: field, Err: err}
}

// GuildName checks a guild name.
func GuildName(operation, name string) error {
	return wrap(operation, "name", validation.Validate(name,
		validation.Required,
		validation.RuneLength(constants.GuildNameMin, constants.GuildNameMax),
	))
}

// ChannelName checks a guild channel name.
func ChannelName(operation, name string) error {
	return wrap(operation, "name", validation.Validate(name,
		validation.Required,
		validation.RuneLength(constants.ChannelNameMin, constants.ChannelNameMax),
	))
}

// WebhookName checks a webhook name.
func WebhookName(operation, name string) error {
	return wrap(operation, "name", validation.Validate(name,
		validation.Required,
		validation.RuneLength(constants.WebhookNameMin, constants.WebhookNameMax),
		validation.By(func(value interface{}) error {
			s, _ := value.(string)
			lowered := strings.ToLower(s)

			for _, word := range constants.WebhookForbiddenNames {
				if strings.Contains(lowered, word) {
					return fmt.Errorf("%w: %q", ErrForbiddenWebhookName, word)
				}
			}

			return nil
		}),
	))
}

// TemplateName checks a template name.
func TemplateName(operation, name string) error {
	return wrap(operation, "name", validation.Validate(name,
		validation.Required,
		validation.RuneLength(constants.TemplateNameMin, constants.TemplateNameMax),
	))
}

// TemplateCode checks that a template code is present.
func TemplateCode(operation string, code id.TemplateCode) error {
	return wrap(operation, "template_code", validation.Validate(code.Value(), validation.Required))
}

// Nickname checks a member nickname. An empty nickname resets it.
func Nickname(operation, nick string) error {
	return wrap(operation, "nick", validation.Validate(nick,
		validation.RuneLength(constants.NicknameMin, constants.NicknameMax),
	))
}

// SearchQuery checks a member search query.
func SearchQuery(operation, query string) error {
	return wrap(operation, "query", validation.Validate(query,
		validation.Required,
		validation.RuneLength(constants.SearchQueryMin, constants.SearchQueryMax),
	))
}

// Emoji checks the name and image of a new custom emoji.
func Emoji(operation, name, image string) error {
	err := validation.Validate(name, validation.Required, validation.Match(emojiNamePattern))
	if err != nil {
		return wrap(operation, "name", err)
	}

	return wrap(operation, "image", validation.Validate(image, validation.Required, is.DataURI))
}

// MessageIDs checks the messages of a bulk delete.
func MessageIDs(operation string, messageIDs []id.MessageID) error {
	return wrap(operation, "messages", validation.Validate(messageIDs,
		validation.Required,
		validation.Length(constants.BulkDeleteMin, constants.BulkDeleteMax),
		validation.Each(validation.Required),
	))
}

// Reaction checks the emoji a reaction operation targets.
func Reaction(operation string, emoji discord.ReactionType) error {
	if emoji.IsCustom() {
		err := validation.Validate(emoji.Name(), validation.Required, validation.Match(emojiNamePattern))
		if err != nil {
			return wrap(operation, "emoji", err)
		}

		if emoji.EmojiID().IsZero() {
			return wrap(operation, "emoji", ErrCustomEmojiID)
		}

		return nil
	}

	return wrap(operation, "emoji", validation.Validate(emoji.Name(),
		validation.Required,
		validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if uniseg.GraphemeClusterCount(s) != 1 || len(gomoji.FindAll(s)) != 1 {
				return ErrNotAnEmoji
			}

			return nil
		}),
	))
}
