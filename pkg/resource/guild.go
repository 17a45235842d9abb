package resource

import (
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// GuildResource addresses /guilds and is the parent of every guild-scoped
// relationship.
type GuildResource struct {
	transport discord.Transport
}

// Get returns the guild.
func (r GuildResource) Get(guildID id.GuildID) *discord.Request {
	return r.transport.Guild(guildID)
}

// Post creates a guild named name, which must be 2 to 100 characters.
func (r GuildResource) Post(name string) (*discord.Request, error) {
	return r.transport.CreateGuild(name)
}

// Patch modifies the guild.
func (r GuildResource) Patch(guildID id.GuildID) *discord.Request {
	return r.transport.UpdateGuild(guildID)
}

// Delete deletes the guild. The current user must own it.
func (r GuildResource) Delete(guildID id.GuildID) *discord.Request {
	return r.transport.DeleteGuild(guildID)
}

// PostFromTemplate creates a guild named name from the template code.
func (r GuildResource) PostFromTemplate(code id.TemplateCode, name string) (*discord.Request, error) {
	return r.transport.CreateGuildFromTemplate(code, name)
}

// Prune addresses the guild's member prune.
func (r GuildResource) Prune(guildID id.GuildID) GuildPruneRPC {
	return GuildPruneRPC{transport: r.transport, guildID: guildID}
}

// Preview addresses the guild's public preview.
func (r GuildResource) Preview(guildID id.GuildID) GuildPreviewResource {
	return GuildPreviewResource{transport: r.transport, guildID: guildID}
}

// VanityURL addresses the guild's vanity invite.
func (r GuildResource) VanityURL(guildID id.GuildID) GuildVanityURLResource {
	return GuildVanityURLResource{transport: r.transport, guildID: guildID}
}

// WelcomeScreen addresses the guild's welcome screen.
func (r GuildResource) WelcomeScreen(guildID id.GuildID) GuildWelcomeScreenResource {
	return GuildWelcomeScreenResource{transport: r.transport, guildID: guildID}
}

// Widget addresses the guild's widget settings.
func (r GuildResource) Widget(guildID id.GuildID) GuildWidgetResource {
	return GuildWidgetResource{transport: r.transport, guildID: guildID}
}

// AuditLogs addresses the guild's audit log.
func (r GuildResource) AuditLogs(guildID id.GuildID) GuildAuditLogResource {
	return GuildAuditLogResource{transport: r.transport, guildID: guildID}
}

// Bans addresses the guild's bans.
func (r GuildResource) Bans(guildID id.GuildID) GuildBanResource {
	return GuildBanResource{transport: r.transport, guildID: guildID}
}

// Channels addresses the guild's channels.
func (r GuildResource) Channels(guildID id.GuildID) GuildChannelResource {
	return GuildChannelResource{transport: r.transport, guildID: guildID}
}

// Emojis addresses the guild's custom emojis.
func (r GuildResource) Emojis(guildID id.GuildID) GuildEmojiResource {
	return GuildEmojiResource{transport: r.transport, guildID: guildID}
}

// Integrations addresses the guild's integrations.
func (r GuildResource) Integrations(guildID id.GuildID) GuildIntegrationResource {
	return GuildIntegrationResource{transport: r.transport, guildID: guildID}
}

// Invites addresses the guild's invites.
func (r GuildResource) Invites(guildID id.GuildID) GuildInviteResource {
	return GuildInviteResource{transport: r.transport, guildID: guildID}
}

// Members addresses the guild's members.
func (r GuildResource) Members(guildID id.GuildID) GuildMemberResource {
	return GuildMemberResource{transport: r.transport, guildID: guildID}
}

// Roles addresses the guild's roles.
func (r GuildResource) Roles(guildID id.GuildID) GuildRoleResource {
	return GuildRoleResource{transport: r.transport, guildID: guildID}
}

// Templates addresses the guild's templates.
func (r GuildResource) Templates(guildID id.GuildID) GuildTemplateResource {
	return GuildTemplateResource{transport: r.transport, guildID: guildID}
}

// VoiceRegions addresses the voice regions available to the guild.
func (r GuildResource) VoiceRegions(guildID id.GuildID) GuildVoiceRegionResource {
	return GuildVoiceRegionResource{transport: r.transport, guildID: guildID}
}

// VoiceStates addresses voice states in the guild.
func (r GuildResource) VoiceStates(guildID id.GuildID) GuildVoiceStateResource {
	return GuildVoiceStateResource{transport: r.transport, guildID: guildID}
}

// Webhooks addresses the guild's webhooks.
func (r GuildResource) Webhooks(guildID id.GuildID) GuildWebhookResource {
	return GuildWebhookResource{transport: r.transport, guildID: guildID}
}

// GuildPruneRPC addresses /guilds/{guild_id}/prune.
type GuildPruneRPC struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildPruneRPC) GuildID() id.GuildID { return r.guildID }

// Get returns the number of members a prune would remove.
func (r GuildPruneRPC) Get() *discord.Request {
	return r.transport.GuildPruneCount(r.guildID)
}

// Post starts a prune.
func (r GuildPruneRPC) Post() *discord.Request {
	return r.transport.CreateGuildPrune(r.guildID)
}

// GuildPreviewResource addresses /guilds/{guild_id}/preview.
type GuildPreviewResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildPreviewResource) GuildID() id.GuildID { return r.guildID }

// Get returns the guild preview.
func (r GuildPreviewResource) Get() *discord.Request {
	return r.transport.GuildPreview(r.guildID)
}

// GuildVanityURLResource addresses /guilds/{guild_id}/vanity-url.
type GuildVanityURLResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildVanityURLResource) GuildID() id.GuildID { return r.guildID }

// Get returns the vanity invite code and its uses.
func (r GuildVanityURLResource) Get() *discord.Request {
	return r.transport.GuildVanityURL(r.guildID)
}

// GuildWelcomeScreenResource addresses /guilds/{guild_id}/welcome-screen.
type GuildWelcomeScreenResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildWelcomeScreenResource) GuildID() id.GuildID { return r.guildID }

// Get returns the welcome screen.
func (r GuildWelcomeScreenResource) Get() *discord.Request {
	return r.transport.GuildWelcomeScreen(r.guildID)
}

// Patch modifies the welcome screen.
func (r GuildWelcomeScreenResource) Patch() *discord.Request {
	return r.transport.UpdateGuildWelcomeScreen(r.guildID)
}

// GuildWidgetResource addresses the guild widget. Reads go to widget.json,
// updates to the widget settings.
type GuildWidgetResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildWidgetResource) GuildID() id.GuildID { return r.guildID }

// Get returns the widget settings.
func (r GuildWidgetResource) Get() *discord.Request {
	return r.transport.GuildWidget(r.guildID)
}

// Patch modifies the widget settings.
func (r GuildWidgetResource) Patch() *discord.Request {
	return r.transport.UpdateGuildWidget(r.guildID)
}

// GuildAuditLogResource addresses /guilds/{guild_id}/audit-logs.
type GuildAuditLogResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildAuditLogResource) GuildID() id.GuildID { return r.guildID }

// List returns audit log entries.
func (r GuildAuditLogResource) List() *discord.Request {
	return r.transport.AuditLog(r.guildID)
}

// GuildBanResource addresses /guilds/{guild_id}/bans.
type GuildBanResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildBanResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's bans.
func (r GuildBanResource) List() *discord.Request {
	return r.transport.Bans(r.guildID)
}

// Get returns the ban for a user.
func (r GuildBanResource) Get(userID id.UserID) *discord.Request {
	return r.transport.Ban(r.guildID, userID)
}

// Post bans a user.
func (r GuildBanResource) Post(userID id.UserID) *discord.Request {
	return r.transport.CreateBan(r.guildID, userID)
}

// Delete lifts a user's ban.
func (r GuildBanResource) Delete(userID id.UserID) *discord.Request {
	return r.transport.DeleteBan(r.guildID, userID)
}

// GuildChannelResource addresses /guilds/{guild_id}/channels.
type GuildChannelResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildChannelResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's channels.
func (r GuildChannelResource) List() *discord.Request {
	return r.transport.GuildChannels(r.guildID)
}

// Post creates a channel named name, which must be 1 to 100 characters.
func (r GuildChannelResource) Post(name string) (*discord.Request, error) {
	return r.transport.CreateGuildChannel(r.guildID, name)
}

// PatchList reorders the guild's channels.
func (r GuildChannelResource) PatchList(positions []discord.ChannelPosition) *discord.Request {
	return r.transport.UpdateGuildChannelPositions(r.guildID, positions)
}

// GuildEmojiResource addresses /guilds/{guild_id}/emojis.
type GuildEmojiResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildEmojiResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's emojis.
func (r GuildEmojiResource) List() *discord.Request {
	return r.transport.Emojis(r.guildID)
}

// Get returns an emoji.
func (r GuildEmojiResource) Get(emojiID id.EmojiID) *discord.Request {
	return r.transport.Emoji(r.guildID, emojiID)
}

// Post uploads an emoji. image is a base64 data URI.
func (r GuildEmojiResource) Post(name, image string) (*discord.Request, error) {
	return r.transport.CreateEmoji(r.guildID, name, image)
}

// Patch modifies an emoji.
func (r GuildEmojiResource) Patch(emojiID id.EmojiID) *discord.Request {
	return r.transport.UpdateEmoji(r.guildID, emojiID)
}

// Delete deletes an emoji.
func (r GuildEmojiResource) Delete(emojiID id.EmojiID) *discord.Request {
	return r.transport.DeleteEmoji(r.guildID, emojiID)
}

// GuildIntegrationResource addresses /guilds/{guild_id}/integrations.
type GuildIntegrationResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildIntegrationResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's integrations.
func (r GuildIntegrationResource) List() *discord.Request {
	return r.transport.GuildIntegrations(r.guildID)
}

// Delete removes an integration.
func (r GuildIntegrationResource) Delete(integrationID id.IntegrationID) *discord.Request {
	return r.transport.DeleteGuildIntegration(r.guildID, integrationID)
}

// GuildInviteResource addresses /guilds/{guild_id}/invites.
type GuildInviteResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildInviteResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's invites.
func (r GuildInviteResource) List() *discord.Request {
	return r.transport.GuildInvites(r.guildID)
}

// GuildRoleResource addresses /guilds/{guild_id}/roles.
type GuildRoleResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildRoleResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's roles.
func (r GuildRoleResource) List() *discord.Request {
	return r.transport.Roles(r.guildID)
}

// Post creates a role.
func (r GuildRoleResource) Post() *discord.Request {
	return r.transport.CreateRole(r.guildID)
}

// Patch modifies a role.
func (r GuildRoleResource) Patch(roleID id.RoleID) *discord.Request {
	return r.transport.UpdateRole(r.guildID, roleID)
}

// Delete deletes a role.
func (r GuildRoleResource) Delete(roleID id.RoleID) *discord.Request {
	return r.transport.DeleteRole(r.guildID, roleID)
}

// PatchList reorders the guild's roles.
func (r GuildRoleResource) PatchList(positions []discord.RolePosition) *discord.Request {
	return r.transport.UpdateRolePositions(r.guildID, positions)
}

// GuildTemplateResource addresses /guilds/{guild_id}/templates.
type GuildTemplateResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildTemplateResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's templates.
func (r GuildTemplateResource) List() *discord.Request {
	return r.transport.Templates(r.guildID)
}

// Post snapshots the guild into a template named name (1 to 100 characters).
func (r GuildTemplateResource) Post(name string) (*discord.Request, error) {
	return r.transport.CreateTemplate(r.guildID, name)
}

// Put syncs the template with the guild's current state.
func (r GuildTemplateResource) Put(code id.TemplateCode) *discord.Request {
	return r.transport.SyncTemplate(r.guildID, code)
}

// Patch modifies a template's metadata.
func (r GuildTemplateResource) Patch(code id.TemplateCode) *discord.Request {
	return r.transport.UpdateTemplate(r.guildID, code)
}

// Delete deletes a template.
func (r GuildTemplateResource) Delete(code id.TemplateCode) *discord.Request {
	return r.transport.DeleteTemplate(r.guildID, code)
}

// GuildVoiceRegionResource addresses /guilds/{guild_id}/regions.
type GuildVoiceRegionResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildVoiceRegionResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's voice regions.
func (r GuildVoiceRegionResource) List() *discord.Request {
	return r.transport.GuildVoiceRegions(r.guildID)
}

// GuildVoiceStateResource addresses /guilds/{guild_id}/voice-states.
type GuildVoiceStateResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildVoiceStateResource) GuildID() id.GuildID { return r.guildID }

// Patch updates another user's voice state. channelID must be the stage
// channel the user is in.
func (r GuildVoiceStateResource) Patch(userID id.UserID, channelID id.ChannelID) *discord.Request {
	return r.transport.UpdateUserVoiceState(r.guildID, userID, channelID)
}

// PatchCurrentUser updates the current user's voice state in a stage channel.
func (r GuildVoiceStateResource) PatchCurrentUser(channelID id.ChannelID) *discord.Request {
	return r.transport.UpdateCurrentUserVoiceState(r.guildID, channelID)
}

// GuildWebhookResource addresses /guilds/{guild_id}/webhooks.
type GuildWebhookResource struct {
	transport discord.Transport
	guildID   id.GuildID
}

// GuildID returns the guild the node addresses.
func (r GuildWebhookResource) GuildID() id.GuildID { return r.guildID }

// List returns the guild's webhooks.
func (r GuildWebhookResource) List() *discord.Request {
	return r.transport.GuildWebhooks(r.guildID)
}
