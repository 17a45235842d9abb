package client

import (
	"net/http"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// Invite implements discord.MetaRequests.Invite.
func (c *Client) Invite(code id.InviteCode) *discord.Request {
	return c.request(RouteGetInvite, http.MethodGet, pathInvite, discord.P(paramInviteCode, code))
}

// DeleteInvite implements discord.MetaRequests.DeleteInvite.
func (c *Client) DeleteInvite(code id.InviteCode) *discord.Request {
	return c.request(RouteDeleteInvite, http.MethodDelete, pathInvite, discord.P(paramInviteCode, code))
}

// Template implements discord.MetaRequests.Template.
func (c *Client) Template(code id.TemplateCode) *discord.Request {
	return c.request(RouteGetTemplate, http.MethodGet, pathGuildTemplateCode, discord.P(paramTemplateCode, code))
}

// VoiceRegions implements discord.MetaRequests.VoiceRegions.
func (c *Client) VoiceRegions() *discord.Request {
	return c.request(RouteGetVoiceRegions, http.MethodGet, pathVoiceRegions)
}

// Gateway implements discord.MetaRequests.Gateway.
func (c *Client) Gateway() *discord.Request {
	return c.request(RouteGetGateway, http.MethodGet, pathGateway)
}

// GatewayBot implements discord.MetaRequests.GatewayBot.
func (c *Client) GatewayBot() *discord.Request {
	return c.request(RouteGetGatewayBot, http.MethodGet, pathGatewayBot)
}
