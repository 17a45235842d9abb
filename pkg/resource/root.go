package resource

import "github.com/fivetwenty-io/discord-resource/pkg/discord"

// Root is the entry point of the resource tree.
type Root struct {
	transport discord.Transport
}

// NewRoot binds a resource tree to transport. The transport must outlive every
// handle derived from the returned Root.
func NewRoot(transport discord.Transport) Root {
	return Root{transport: transport}
}

// Transport returns the transport shared by every handle of this tree.
func (r Root) Transport() discord.Transport {
	return r.transport
}

// Channels addresses channels by id.
func (r Root) Channels() ChannelResource {
	return ChannelResource{transport: r.transport}
}

// Gateway addresses the gateway endpoint.
func (r Root) Gateway() GatewayResource {
	return GatewayResource{transport: r.transport}
}

// Guilds addresses guilds by id.
func (r Root) Guilds() GuildResource {
	return GuildResource{transport: r.transport}
}

// Invites addresses invites by code.
func (r Root) Invites() InviteResource {
	return InviteResource{transport: r.transport}
}

// Templates addresses guild templates by code.
func (r Root) Templates() TemplateResource {
	return TemplateResource{transport: r.transport}
}

// Users addresses users and the current user.
func (r Root) Users() UserResource {
	return UserResource{transport: r.transport}
}

// VoiceRegions addresses the global voice region list.
func (r Root) VoiceRegions() VoiceRegionResource {
	return VoiceRegionResource{transport: r.transport}
}

// Webhooks addresses webhooks by id.
func (r Root) Webhooks() WebhookResource {
	return WebhookResource{transport: r.transport}
}
