package client

import (
	"net/http"

	"github.com/fivetwenty-io/discord-resource/internal/validate"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// GuildMembers implements discord.MemberRequests.GuildMembers.
func (c *Client) GuildMembers(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildMembers, http.MethodGet, pathGuildMembers, guildID)
}

// GuildMember implements discord.MemberRequests.GuildMember.
func (c *Client) GuildMember(guildID id.GuildID, userID id.UserID) *discord.Request {
	return c.guildRequest(RouteGetMember, http.MethodGet, pathGuildMember, guildID, discord.P(paramUserID, userID))
}

// AddGuildMember implements discord.MemberRequests.AddGuildMember. accessToken
// is an OAuth2 token of the user with the guilds.join scope.
func (c *Client) AddGuildMember(guildID id.GuildID, userID id.UserID, accessToken string) *discord.Request {
	return c.guildRequest(RouteAddGuildMember, http.MethodPut, pathGuildMember, guildID, discord.P(paramUserID, userID)).
		Field("access_token", accessToken)
}

// UpdateGuildMember implements discord.MemberRequests.UpdateGuildMember.
func (c *Client) UpdateGuildMember(guildID id.GuildID, userID id.UserID) *discord.Request {
	return c.guildRequest(RouteUpdateGuildMember, http.MethodPatch, pathGuildMember, guildID, discord.P(paramUserID, userID))
}

// RemoveGuildMember implements discord.MemberRequests.RemoveGuildMember.
func (c *Client) RemoveGuildMember(guildID id.GuildID, userID id.UserID) *discord.Request {
	return c.guildRequest(RouteRemoveMember, http.MethodDelete, pathGuildMember, guildID, discord.P(paramUserID, userID))
}

// SearchGuildMembers implements discord.MemberRequests.SearchGuildMembers.
func (c *Client) SearchGuildMembers(guildID id.GuildID, query string) (*discord.Request, error) {
	err := validate.SearchQuery(RouteSearchGuildMembers, query)
	if err != nil {
		return nil, err
	}

	return c.guildRequest(RouteSearchGuildMembers, http.MethodGet, pathGuildMembersSearch, guildID).
		Query("query", query), nil
}

// UpdateCurrentMemberNick implements discord.MemberRequests.UpdateCurrentMemberNick.
// An empty nick resets the nickname.
func (c *Client) UpdateCurrentMemberNick(guildID id.GuildID, nick string) (*discord.Request, error) {
	err := validate.Nickname(RouteUpdateCurrentMember, nick)
	if err != nil {
		return nil, err
	}

	req := c.guildRequest(RouteUpdateCurrentMember, http.MethodPatch, pathGuildMemberMe, guildID)
	if nick == "" {
		return req.Field("nick", nil), nil
	}

	return req.Field("nick", nick), nil
}

// AddGuildMemberRole implements discord.MemberRequests.AddGuildMemberRole.
func (c *Client) AddGuildMemberRole(guildID id.GuildID, userID id.UserID, roleID id.RoleID) *discord.Request {
	return c.guildRequest(RouteAddRoleToMember, http.MethodPut, pathGuildMemberRole, guildID,
		discord.P(paramUserID, userID),
		discord.P(paramRoleID, roleID))
}

// RemoveGuildMemberRole implements discord.MemberRequests.RemoveGuildMemberRole.
func (c *Client) RemoveGuildMemberRole(guildID id.GuildID, userID id.UserID, roleID id.RoleID) *discord.Request {
	return c.guildRequest(RouteRemoveRoleFromMember, http.MethodDelete, pathGuildMemberRole, guildID,
		discord.P(paramUserID, userID),
		discord.P(paramRoleID, roleID))
}
