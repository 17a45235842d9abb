package client

import (
	"net/http"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// User implements discord.UserRequests.User.
func (c *Client) User(userID id.UserID) *discord.Request {
	return c.request(RouteGetUser, http.MethodGet, pathUser, discord.P(paramUserID, userID))
}

// CurrentUser implements discord.UserRequests.CurrentUser.
func (c *Client) CurrentUser() *discord.Request {
	return c.request(RouteGetCurrentUser, http.MethodGet, pathUserMe)
}

// UpdateCurrentUser implements discord.UserRequests.UpdateCurrentUser.
func (c *Client) UpdateCurrentUser() *discord.Request {
	return c.request(RouteUpdateCurrentUser, http.MethodPatch, pathUserMe)
}

// CurrentUserGuilds implements discord.UserRequests.CurrentUserGuilds.
func (c *Client) CurrentUserGuilds() *discord.Request {
	return c.request(RouteGetCurrentUserGuilds, http.MethodGet, pathUserMeGuilds)
}

// LeaveGuild implements discord.UserRequests.LeaveGuild.
func (c *Client) LeaveGuild(guildID id.GuildID) *discord.Request {
	return c.request(RouteLeaveGuild, http.MethodDelete, pathUserMeGuild, discord.P(paramGuildID, guildID))
}

// CurrentUserConnections implements discord.UserRequests.CurrentUserConnections.
func (c *Client) CurrentUserConnections() *discord.Request {
	return c.request(RouteGetCurrentUserConnections, http.MethodGet, pathUserMeConnections)
}

// CreatePrivateChannel implements discord.UserRequests.CreatePrivateChannel.
// The recipient travels in the body; the route still records it as a param.
func (c *Client) CreatePrivateChannel(recipientID id.UserID) *discord.Request {
	return c.request(RouteCreatePrivateChannel, http.MethodPost, pathUserMeChannels,
		discord.P(paramRecipientID, recipientID)).
		Field("recipient_id", recipientID.String())
}
