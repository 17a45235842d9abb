package client

import (
	"net/http"

	"github.com/fivetwenty-io/discord-resource/internal/validate"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

func (c *Client) reaction(name, method, template string, channelID id.ChannelID, messageID id.MessageID,
	emoji discord.ReactionType, extra ...discord.Param,
) (*discord.Request, error) {
	err := validate.Reaction(name, emoji)
	if err != nil {
		return nil, err
	}

	params := append([]discord.Param{
		discord.P(paramChannelID, channelID),
		discord.P(paramMessageID, messageID),
		discord.P(paramEmoji, emoji),
	}, extra...)

	return c.request(name, method, template, params...), nil
}

// Reactions implements discord.ReactionRequests.Reactions.
func (c *Client) Reactions(channelID id.ChannelID, messageID id.MessageID, emoji discord.ReactionType) (*discord.Request, error) {
	return c.reaction(RouteGetReactions, http.MethodGet, pathReaction, channelID, messageID, emoji)
}

// CreateReaction implements discord.ReactionRequests.CreateReaction.
func (c *Client) CreateReaction(channelID id.ChannelID, messageID id.MessageID, emoji discord.ReactionType) (*discord.Request, error) {
	return c.reaction(RouteCreateReaction, http.MethodPut, pathReactionMe, channelID, messageID, emoji)
}

// DeleteCurrentUserReaction implements discord.ReactionRequests.DeleteCurrentUserReaction.
func (c *Client) DeleteCurrentUserReaction(channelID id.ChannelID, messageID id.MessageID, emoji discord.ReactionType) (*discord.Request, error) {
	return c.reaction(RouteDeleteCurrentUserReaction, http.MethodDelete, pathReactionMe, channelID, messageID, emoji)
}

// DeleteReaction implements discord.ReactionRequests.DeleteReaction.
func (c *Client) DeleteReaction(channelID id.ChannelID, messageID id.MessageID, emoji discord.ReactionType, userID id.UserID) (*discord.Request, error) {
	return c.reaction(RouteDeleteReaction, http.MethodDelete, pathReactionUser, channelID, messageID, emoji,
		discord.P(paramUserID, userID))
}

// DeleteAllReaction implements discord.ReactionRequests.DeleteAllReaction.
// It removes every reaction for one emoji.
func (c *Client) DeleteAllReaction(channelID id.ChannelID, messageID id.MessageID, emoji discord.ReactionType) (*discord.Request, error) {
	return c.reaction(RouteDeleteAllReaction, http.MethodDelete, pathReaction, channelID, messageID, emoji)
}

// DeleteAllReactions implements discord.ReactionRequests.DeleteAllReactions.
func (c *Client) DeleteAllReactions(channelID id.ChannelID, messageID id.MessageID) *discord.Request {
	return c.request(RouteDeleteAllReactions, http.MethodDelete, pathReactions,
		discord.P(paramChannelID, channelID),
		discord.P(paramMessageID, messageID))
}
