package client

import (
	"net/http"

	"github.com/fivetwenty-io/discord-resource/internal/validate"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// ChannelMessages implements discord.MessageRequests.ChannelMessages.
func (c *Client) ChannelMessages(channelID id.ChannelID) *discord.Request {
	return c.request(RouteGetChannelMessages, http.MethodGet, pathMessages,
		discord.P(paramChannelID, channelID))
}

// Message implements discord.MessageRequests.Message.
func (c *Client) Message(channelID id.ChannelID, messageID id.MessageID) *discord.Request {
	return c.request(RouteGetMessage, http.MethodGet, pathMessage,
		discord.P(paramChannelID, channelID),
		discord.P(paramMessageID, messageID))
}

// CreateMessage implements discord.MessageRequests.CreateMessage.
func (c *Client) CreateMessage(channelID id.ChannelID) *discord.Request {
	return c.request(RouteCreateMessage, http.MethodPost, pathMessages,
		discord.P(paramChannelID, channelID))
}

// UpdateMessage implements discord.MessageRequests.UpdateMessage.
func (c *Client) UpdateMessage(channelID id.ChannelID, messageID id.MessageID) *discord.Request {
	return c.request(RouteUpdateMessage, http.MethodPatch, pathMessage,
		discord.P(paramChannelID, channelID),
		discord.P(paramMessageID, messageID))
}

// DeleteMessage implements discord.MessageRequests.DeleteMessage.
func (c *Client) DeleteMessage(channelID id.ChannelID, messageID id.MessageID) *discord.Request {
	return c.request(RouteDeleteMessage, http.MethodDelete, pathMessage,
		discord.P(paramChannelID, channelID),
		discord.P(paramMessageID, messageID))
}

// DeleteMessages implements discord.MessageRequests.DeleteMessages.
func (c *Client) DeleteMessages(channelID id.ChannelID, messageIDs []id.MessageID) (*discord.Request, error) {
	err := validate.MessageIDs(RouteDeleteMessages, messageIDs)
	if err != nil {
		return nil, err
	}

	messages := make([]string, 0, len(messageIDs))
	for _, messageID := range messageIDs {
		messages = append(messages, messageID.String())
	}

	return c.request(RouteDeleteMessages, http.MethodPost, pathMessagesBulkDelete,
		discord.P(paramChannelID, channelID)).
		Field("messages", messages), nil
}

// CrosspostMessage implements discord.MessageRequests.CrosspostMessage.
func (c *Client) CrosspostMessage(channelID id.ChannelID, messageID id.MessageID) *discord.Request {
	return c.request(RouteCrosspostMessage, http.MethodPost, pathMessageCrosspost,
		discord.P(paramChannelID, channelID),
		discord.P(paramMessageID, messageID))
}
