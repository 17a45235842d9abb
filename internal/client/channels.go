package client

import (
	"net/http"

	"github.com/fivetwenty-io/discord-resource/internal/validate"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// Channel implements discord.ChannelRequests.Channel.
func (c *Client) Channel(channelID id.ChannelID) *discord.Request {
	return c.request(RouteGetChannel, http.MethodGet, pathChannel,
		discord.P(paramChannelID, channelID))
}

// UpdateChannel implements discord.ChannelRequests.UpdateChannel.
func (c *Client) UpdateChannel(channelID id.ChannelID) *discord.Request {
	return c.request(RouteUpdateChannel, http.MethodPatch, pathChannel,
		discord.P(paramChannelID, channelID))
}

// DeleteChannel implements discord.ChannelRequests.DeleteChannel.
func (c *Client) DeleteChannel(channelID id.ChannelID) *discord.Request {
	return c.request(RouteDeleteChannel, http.MethodDelete, pathChannel,
		discord.P(paramChannelID, channelID))
}

// FollowNewsChannel implements discord.ChannelRequests.FollowNewsChannel.
// Messages published in channelID are crossposted to webhookChannelID.
func (c *Client) FollowNewsChannel(channelID, webhookChannelID id.ChannelID) *discord.Request {
	return c.request(RouteFollowNewsChannel, http.MethodPost, pathChannelFollowers,
		discord.P(paramChannelID, channelID)).
		Field("webhook_channel_id", webhookChannelID.String())
}

// CreateTypingTrigger implements discord.ChannelRequests.CreateTypingTrigger.
func (c *Client) CreateTypingTrigger(channelID id.ChannelID) *discord.Request {
	return c.request(RouteCreateTypingTrigger, http.MethodPost, pathChannelTyping,
		discord.P(paramChannelID, channelID))
}

// ChannelInvites implements discord.ChannelRequests.ChannelInvites.
func (c *Client) ChannelInvites(channelID id.ChannelID) *discord.Request {
	return c.request(RouteGetChannelInvites, http.MethodGet, pathChannelInvites,
		discord.P(paramChannelID, channelID))
}

// CreateInvite implements discord.ChannelRequests.CreateInvite.
func (c *Client) CreateInvite(channelID id.ChannelID) *discord.Request {
	return c.request(RouteCreateInvite, http.MethodPost, pathChannelInvites,
		discord.P(paramChannelID, channelID))
}

// UpdateChannelPermission implements discord.ChannelRequests.UpdateChannelPermission.
func (c *Client) UpdateChannelPermission(channelID id.ChannelID, overwrite discord.PermissionOverwrite) *discord.Request {
	return c.request(RouteUpdateChannelPermission, http.MethodPut, pathChannelPermission,
		discord.P(paramChannelID, channelID),
		discord.P(paramOverwriteID, overwrite.Target)).
		Field("type", int(overwrite.Target.Kind())).
		Field("allow", overwrite.Allow.String()).
		Field("deny", overwrite.Deny.String())
}

// DeleteChannelPermission implements discord.ChannelRequests.DeleteChannelPermission.
func (c *Client) DeleteChannelPermission(channelID id.ChannelID, target discord.OverwriteTarget) *discord.Request {
	return c.request(RouteDeleteChannelPermission, http.MethodDelete, pathChannelPermission,
		discord.P(paramChannelID, channelID),
		discord.P(paramOverwriteID, target))
}

// Pins implements discord.ChannelRequests.Pins.
func (c *Client) Pins(channelID id.ChannelID) *discord.Request {
	return c.request(RouteGetPins, http.MethodGet, pathChannelPins,
		discord.P(paramChannelID, channelID))
}

// CreatePin implements discord.ChannelRequests.CreatePin.
func (c *Client) CreatePin(channelID id.ChannelID, messageID id.MessageID) *discord.Request {
	return c.request(RouteCreatePin, http.MethodPut, pathChannelPin,
		discord.P(paramChannelID, channelID),
		discord.P(paramMessageID, messageID))
}

// DeletePin implements discord.ChannelRequests.DeletePin.
func (c *Client) DeletePin(channelID id.ChannelID, messageID id.MessageID) *discord.Request {
	return c.request(RouteDeletePin, http.MethodDelete, pathChannelPin,
		discord.P(paramChannelID, channelID),
		discord.P(paramMessageID, messageID))
}

// ChannelWebhooks implements discord.ChannelRequests.ChannelWebhooks.
func (c *Client) ChannelWebhooks(channelID id.ChannelID) *discord.Request {
	return c.request(RouteGetChannelWebhooks, http.MethodGet, pathChannelWebhooks,
		discord.P(paramChannelID, channelID))
}

// CreateWebhook implements discord.ChannelRequests.CreateWebhook.
func (c *Client) CreateWebhook(channelID id.ChannelID, name string) (*discord.Request, error) {
	err := validate.WebhookName(RouteCreateWebhook, name)
	if err != nil {
		return nil, err
	}

	return c.request(RouteCreateWebhook, http.MethodPost, pathChannelWebhooks,
		discord.P(paramChannelID, channelID)).
		Field("name", name), nil
}
