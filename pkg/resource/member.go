package resource

import (
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// GuildMemberResource addresses /guilds/{guild_id}/members.
type GuildMemberResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildMemberResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's members.
func (r GuildMemberResource) List() *discord.Request {
	return r.transport.GuildMembers(r.guildID)
}

// Get returns a member.
func (r GuildMemberResource) Get(userID id.UserID) *discord.Request {
	return r.transport.GuildMember(r.guildID, userID)
}

// Post adds userID to the guild using an OAuth2 access token granted with the
// guilds.join scope.
func (r GuildMemberResource) Post(userID id.UserID, accessToken string) *discord.Request {
	return r.transport.AddGuildMember(r.guildID, userID, accessToken)
}

// Patch modifies a member.
func (r GuildMemberResource) Patch(userID id.UserID) *discord.Request {
	return r.transport.UpdateGuildMember(r.guildID, userID)
}

// Delete kicks a member.
func (r GuildMemberResource) Delete(userID id.UserID) *discord.Request {
	return r.transport.RemoveGuildMember(r.guildID, userID)
}

// Search finds members whose username or nickname starts with query.
func (r GuildMemberResource) Search(query string) (*discord.Request, error) {
	return r.transport.SearchGuildMembers(r.guildID, query)
}

// CurrentUserNickname addresses the authenticated user's own membership.
func (r GuildMemberResource) CurrentUserNickname() GuildMemberNicknameResource {
	return GuildMemberNicknameResource{transport: r.transport, guildID: r.guildID}
}

// Roles addresses a member's roles.
func (r GuildMemberResource) Roles(userID id.UserID) GuildMemberRoleResource {
	return GuildMemberRoleResource{transport: r.transport, guildID: r.guildID, userID: userID}
}

// GuildMemberNicknameResource addresses /guilds/{guild_id}/members/@me.
type GuildMemberNicknameResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildMemberNicknameResource) GuildID() id.GuildID { return r.guildID }

// Patch sets the current user's nickname, at most 32 characters. An empty
// nick resets it.
func (r GuildMemberNicknameResource) Patch(nick string) (*discord.Request, error) {
	return r.transport.UpdateCurrentMemberNick(r.guildID, nick)
}

// GuildMemberRoleResource addresses
// /guilds/{guild_id}/members/{user_id}/roles.
type GuildMemberRoleResource struct {
	transport discord.Transport
	guildID   id.GuildID
	userID    id.UserID
}

// GuildID returns the guild the node addresses.
func (r GuildMemberRoleResource) GuildID() id.GuildID { return r.guildID }

// UserID returns the user the node addresses.
func (r GuildMemberRoleResource) UserID() id.UserID { return r.userID }

// Put adds a role to the member.
func (r GuildMemberRoleResource) Put(roleID id.RoleID) *discord.Request {
	return r.transport.AddGuildMemberRole(r.guildID, r.userID, roleID)
}

// Delete removes a role from the member.
func (r GuildMemberRoleResource) Delete(roleID id.RoleID) *discord.Request {
	return r.transport.RemoveGuildMemberRole(r.guildID, r.userID, roleID)
}
