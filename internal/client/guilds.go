package client

import (
	"net/http"

	"github.com/fivetwenty-io/discord-resource/internal/validate"
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

type positionBody struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

func (c *Client) guildRequest(name, method, template string, guildID id.GuildID, extra ...discord.Param) *discord.Request {
	params := append([]discord.Param{discord.P(paramGuildID, guildID)}, extra...)

	return c.request(name, method, template, params...)
}

// Guild implements discord.GuildRequests.Guild.
func (c *Client) Guild(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuild, http.MethodGet, pathGuild, guildID)
}

// CreateGuild implements discord.GuildRequests.CreateGuild.
func (c *Client) CreateGuild(name string) (*discord.Request, error) {
	err := validate.GuildName(RouteCreateGuild, name)
	if err != nil {
		return nil, err
	}

	return c.request(RouteCreateGuild, http.MethodPost, pathGuilds).Field("name", name), nil
}

// UpdateGuild implements discord.GuildRequests.UpdateGuild.
func (c *Client) UpdateGuild(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteUpdateGuild, http.MethodPatch, pathGuild, guildID)
}

// DeleteGuild implements discord.GuildRequests.DeleteGuild.
func (c *Client) DeleteGuild(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteDeleteGuild, http.MethodDelete, pathGuild, guildID)
}

// CreateGuildFromTemplate implements discord.GuildRequests.CreateGuildFromTemplate.
func (c *Client) CreateGuildFromTemplate(code id.TemplateCode, name string) (*discord.Request, error) {
	err := validate.TemplateCode(RouteCreateGuildFromTemplate, code)
	if err != nil {
		return nil, err
	}

	err = validate.GuildName(RouteCreateGuildFromTemplate, name)
	if err != nil {
		return nil, err
	}

	return c.request(RouteCreateGuildFromTemplate, http.MethodPost, pathGuildTemplateCode,
		discord.P(paramTemplateCode, code)).
		Field("name", name), nil
}

// GuildPreview implements discord.GuildRequests.GuildPreview.
func (c *Client) GuildPreview(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildPreview, http.MethodGet, pathGuildPreview, guildID)
}

// GuildVanityURL implements discord.GuildRequests.GuildVanityURL.
func (c *Client) GuildVanityURL(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildVanityURL, http.MethodGet, pathGuildVanityURL, guildID)
}

// GuildWelcomeScreen implements discord.GuildRequests.GuildWelcomeScreen.
func (c *Client) GuildWelcomeScreen(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildWelcomeScreen, http.MethodGet, pathGuildWelcomeScreen, guildID)
}

// UpdateGuildWelcomeScreen implements discord.GuildRequests.UpdateGuildWelcomeScreen.
func (c *Client) UpdateGuildWelcomeScreen(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteUpdateGuildWelcomeScreen, http.MethodPatch, pathGuildWelcomeScreen, guildID)
}

// GuildWidget implements discord.GuildRequests.GuildWidget.
func (c *Client) GuildWidget(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildWidget, http.MethodGet, pathGuildWidgetJSON, guildID)
}

// UpdateGuildWidget implements discord.GuildRequests.UpdateGuildWidget.
func (c *Client) UpdateGuildWidget(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteUpdateGuildWidget, http.MethodPatch, pathGuildWidget, guildID)
}

// AuditLog implements discord.GuildRequests.AuditLog.
func (c *Client) AuditLog(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetAuditLog, http.MethodGet, pathGuildAuditLogs, guildID)
}

// Bans implements discord.GuildRequests.Bans.
func (c *Client) Bans(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetBans, http.MethodGet, pathGuildBans, guildID)
}

// Ban implements discord.GuildRequests.Ban.
func (c *Client) Ban(guildID id.GuildID, userID id.UserID) *discord.Request {
	return c.guildRequest(RouteGetBan, http.MethodGet, pathGuildBan, guildID, discord.P(paramUserID, userID))
}

// CreateBan implements discord.GuildRequests.CreateBan.
func (c *Client) CreateBan(guildID id.GuildID, userID id.UserID) *discord.Request {
	return c.guildRequest(RouteCreateBan, http.MethodPut, pathGuildBan, guildID, discord.P(paramUserID, userID))
}

// DeleteBan implements discord.GuildRequests.DeleteBan.
func (c *Client) DeleteBan(guildID id.GuildID, userID id.UserID) *discord.Request {
	return c.guildRequest(RouteDeleteBan, http.MethodDelete, pathGuildBan, guildID, discord.P(paramUserID, userID))
}

// GuildChannels implements discord.GuildRequests.GuildChannels.
func (c *Client) GuildChannels(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildChannels, http.MethodGet, pathGuildChannels, guildID)
}

// CreateGuildChannel implements discord.GuildRequests.CreateGuildChannel.
func (c *Client) CreateGuildChannel(guildID id.GuildID, name string) (*discord.Request, error) {
	err := validate.ChannelName(RouteCreateGuildChannel, name)
	if err != nil {
		return nil, err
	}

	return c.guildRequest(RouteCreateGuildChannel, http.MethodPost, pathGuildChannels, guildID).
		Field("name", name), nil
}

// UpdateGuildChannelPositions implements discord.GuildRequests.UpdateGuildChannelPositions.
func (c *Client) UpdateGuildChannelPositions(guildID id.GuildID, positions []discord.ChannelPosition) *discord.Request {
	body := make([]positionBody, 0, len(positions))
	for _, position := range positions {
		body = append(body, positionBody{ID: position.ID.String(), Position: position.Position})
	}

	return c.guildRequest(RouteUpdateGuildChannelPositions, http.MethodPatch, pathGuildChannels, guildID).Body(body)
}

// Emojis implements discord.GuildRequests.Emojis.
func (c *Client) Emojis(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetEmojis, http.MethodGet, pathGuildEmojis, guildID)
}

// Emoji implements discord.GuildRequests.Emoji.
func (c *Client) Emoji(guildID id.GuildID, emojiID id.EmojiID) *discord.Request {
	return c.guildRequest(RouteGetEmoji, http.MethodGet, pathGuildEmoji, guildID, discord.P(paramEmojiID, emojiID))
}

// CreateEmoji implements discord.GuildRequests.CreateEmoji. image is a data
// URI such as "data:image/png;base64,...".
func (c *Client) CreateEmoji(guildID id.GuildID, name, image string) (*discord.Request, error) {
	err := validate.Emoji(RouteCreateEmoji, name, image)
	if err != nil {
		return nil, err
	}

	return c.guildRequest(RouteCreateEmoji, http.MethodPost, pathGuildEmojis, guildID).
		Field("name", name).
		Field("image", image), nil
}

// UpdateEmoji implements discord.GuildRequests.UpdateEmoji.
func (c *Client) UpdateEmoji(guildID id.GuildID, emojiID id.EmojiID) *discord.Request {
	return c.guildRequest(RouteUpdateEmoji, http.MethodPatch, pathGuildEmoji, guildID, discord.P(paramEmojiID, emojiID))
}

// DeleteEmoji implements discord.GuildRequests.DeleteEmoji.
func (c *Client) DeleteEmoji(guildID id.GuildID, emojiID id.EmojiID) *discord.Request {
	return c.guildRequest(RouteDeleteEmoji, http.MethodDelete, pathGuildEmoji, guildID, discord.P(paramEmojiID, emojiID))
}

// GuildIntegrations implements discord.GuildRequests.GuildIntegrations.
func (c *Client) GuildIntegrations(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildIntegrations, http.MethodGet, pathGuildIntegrations, guildID)
}

// DeleteGuildIntegration implements discord.GuildRequests.DeleteGuildIntegration.
func (c *Client) DeleteGuildIntegration(guildID id.GuildID, integrationID id.IntegrationID) *discord.Request {
	return c.guildRequest(RouteDeleteGuildIntegration, http.MethodDelete, pathGuildIntegration, guildID,
		discord.P(paramIntegrationID, integrationID))
}

// GuildInvites implements discord.GuildRequests.GuildInvites.
func (c *Client) GuildInvites(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildInvites, http.MethodGet, pathGuildInvites, guildID)
}

// GuildPruneCount implements discord.GuildRequests.GuildPruneCount.
func (c *Client) GuildPruneCount(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildPruneCount, http.MethodGet, pathGuildPrune, guildID)
}

// CreateGuildPrune implements discord.GuildRequests.CreateGuildPrune.
func (c *Client) CreateGuildPrune(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteCreateGuildPrune, http.MethodPost, pathGuildPrune, guildID)
}

// Roles implements discord.GuildRequests.Roles.
func (c *Client) Roles(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildRoles, http.MethodGet, pathGuildRoles, guildID)
}

// CreateRole implements discord.GuildRequests.CreateRole.
func (c *Client) CreateRole(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteCreateRole, http.MethodPost, pathGuildRoles, guildID)
}

// UpdateRole implements discord.GuildRequests.UpdateRole.
func (c *Client) UpdateRole(guildID id.GuildID, roleID id.RoleID) *discord.Request {
	return c.guildRequest(RouteUpdateRole, http.MethodPatch, pathGuildRole, guildID, discord.P(paramRoleID, roleID))
}

// DeleteRole implements discord.GuildRequests.DeleteRole.
func (c *Client) DeleteRole(guildID id.GuildID, roleID id.RoleID) *discord.Request {
	return c.guildRequest(RouteDeleteRole, http.MethodDelete, pathGuildRole, guildID, discord.P(paramRoleID, roleID))
}

// UpdateRolePositions implements discord.GuildRequests.UpdateRolePositions.
func (c *Client) UpdateRolePositions(guildID id.GuildID, positions []discord.RolePosition) *discord.Request {
	body := make([]positionBody, 0, len(positions))
	for _, position := range positions {
		body = append(body, positionBody{ID: position.ID.String(), Position: position.Position})
	}

	return c.guildRequest(RouteUpdateRolePositions, http.MethodPatch, pathGuildRoles, guildID).Body(body)
}

// Templates implements discord.GuildRequests.Templates.
func (c *Client) Templates(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetTemplates, http.MethodGet, pathGuildTemplates, guildID)
}

// CreateTemplate implements discord.GuildRequests.CreateTemplate.
func (c *Client) CreateTemplate(guildID id.GuildID, name string) (*discord.Request, error) {
	err := validate.TemplateName(RouteCreateTemplate, name)
	if err != nil {
		return nil, err
	}

	return c.guildRequest(RouteCreateTemplate, http.MethodPost, pathGuildTemplates, guildID).
		Field("name", name), nil
}

// SyncTemplate implements discord.GuildRequests.SyncTemplate.
func (c *Client) SyncTemplate(guildID id.GuildID, code id.TemplateCode) *discord.Request {
	return c.guildRequest(RouteSyncTemplate, http.MethodPut, pathGuildTemplate, guildID, discord.P(paramTemplateCode, code))
}

// UpdateTemplate implements discord.GuildRequests.UpdateTemplate.
func (c *Client) UpdateTemplate(guildID id.GuildID, code id.TemplateCode) *discord.Request {
	return c.guildRequest(RouteUpdateTemplate, http.MethodPatch, pathGuildTemplate, guildID, discord.P(paramTemplateCode, code))
}

// DeleteTemplate implements discord.GuildRequests.DeleteTemplate.
func (c *Client) DeleteTemplate(guildID id.GuildID, code id.TemplateCode) *discord.Request {
	return c.guildRequest(RouteDeleteTemplate, http.MethodDelete, pathGuildTemplate, guildID, discord.P(paramTemplateCode, code))
}

// GuildVoiceRegions implements discord.GuildRequests.GuildVoiceRegions.
func (c *Client) GuildVoiceRegions(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildVoiceRegions, http.MethodGet, pathGuildRegions, guildID)
}

// UpdateUserVoiceState implements discord.GuildRequests.UpdateUserVoiceState.
// channelID must be the stage channel the user is in.
func (c *Client) UpdateUserVoiceState(guildID id.GuildID, userID id.UserID, channelID id.ChannelID) *discord.Request {
	return c.guildRequest(RouteUpdateUserVoiceState, http.MethodPatch, pathGuildVoiceState, guildID,
		discord.P(paramUserID, userID)).
		Field("channel_id", channelID.String())
}

// UpdateCurrentUserVoiceState implements discord.GuildRequests.UpdateCurrentUserVoiceState.
func (c *Client) UpdateCurrentUserVoiceState(guildID id.GuildID, channelID id.ChannelID) *discord.Request {
	return c.guildRequest(RouteUpdateCurrentUserVoiceState, http.MethodPatch, pathGuildVoiceStateMe, guildID).
		Field("channel_id", channelID.String())
}

// GuildWebhooks implements discord.GuildRequests.GuildWebhooks.
func (c *Client) GuildWebhooks(guildID id.GuildID) *discord.Request {
	return c.guildRequest(RouteGetGuildWebhooks, http.MethodGet, pathGuildWebhooks, guildID)
}
