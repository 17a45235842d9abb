package resource

import (
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// UserResource addresses /users.
type UserResource struct {
	transport discord.Transport
}

// Get returns a user.
func (r UserResource) Get(userID id.UserID) *discord.Request {
	return r.transport.User(userID)
}

// Me addresses the authenticated user.
func (r UserResource) Me() UserMeResource {
	return UserMeResource{transport: r.transport}
}

// PrivateChannel addresses the DM channel between the current user and
// userID.
func (r UserResource) PrivateChannel(userID id.UserID) UserPrivateChannelResource {
	return UserPrivateChannelResource{transport: r.transport, userID: userID}
}

// UserPrivateChannelResource opens a DM with one recipient.
type UserPrivateChannelResource struct {
	transport discord.Transport
	userID    id.UserID
}

// UserID returns the user the node addresses.
func (r UserPrivateChannelResource) UserID() id.UserID { return r.userID }

// Post opens a DM channel with the user.
func (r UserPrivateChannelResource) Post() *discord.Request {
	return r.transport.CreatePrivateChannel(r.userID)
}

// UserMeResource addresses /users/@me.
type UserMeResource struct {
	transport discord.Transport
}

// Get returns the current user.
func (r UserMeResource) Get() *discord.Request {
	return r.transport.CurrentUser()
}

// Patch modifies the current user.
func (r UserMeResource) Patch() *discord.Request {
	return r.transport.UpdateCurrentUser()
}

// Guilds addresses the current user's guilds.
func (r UserMeResource) Guilds() UserMeGuildResource {
	return UserMeGuildResource{transport: r.transport}
}

// Connections addresses the current user's connections.
func (r UserMeResource) Connections() UserMeConnectionResource {
	return UserMeConnectionResource{transport: r.transport}
}

// UserMeGuildResource addresses /users/@me/guilds.
type UserMeGuildResource struct {
	transport discord.Transport
}

// List returns the guilds the current user is in.
func (r UserMeGuildResource) List() *discord.Request {
	return r.transport.CurrentUserGuilds()
}

// Delete leaves guildID.
func (r UserMeGuildResource) Delete(guildID id.GuildID) *discord.Request {
	return r.transport.LeaveGuild(guildID)
}

// UserMeConnectionResource addresses /users/@me/connections.
type UserMeConnectionResource struct {
	transport discord.Transport
}

// List returns the current user's connections.
func (r UserMeConnectionResource) List() *discord.Request {
	return r.transport.CurrentUserConnections()
}
