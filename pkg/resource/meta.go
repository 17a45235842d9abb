package resource

import (
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// GatewayResource addresses /gateway.
type GatewayResource struct {
	transport discord.Transport
}

// Get returns the gateway URL.
func (r GatewayResource) Get() *discord.Request {
	return r.transport.Gateway()
}

// GetBot returns the gateway URL together with the bot's shard and session
// start limits. It requires a bot token.
func (r GatewayResource) GetBot() *discord.Request {
	return r.transport.GatewayBot()
}

// InviteResource addresses /invites/{invite_code}.
type InviteResource struct {
	transport discord.Transport
}

// Get returns the invite for code.
func (r InviteResource) Get(code id.InviteCode) *discord.Request {
	return r.transport.Invite(code)
}

// Delete revokes the invite for code.
func (r InviteResource) Delete(code id.InviteCode) *discord.Request {
	return r.transport.DeleteInvite(code)
}

// TemplateResource addresses /guilds/templates/{template_code}.
type TemplateResource struct {
	transport discord.Transport
}

// Get returns the template for code.
func (r TemplateResource) Get(code id.TemplateCode) *discord.Request {
	return r.transport.Template(code)
}

// VoiceRegionResource addresses /voice/regions.
type VoiceRegionResource struct {
	transport discord.Transport
}

// List returns the available voice regions.
func (r VoiceRegionResource) List() *discord.Request {
	return r.transport.VoiceRegions()
}
