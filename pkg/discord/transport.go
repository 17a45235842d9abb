package discord

import "github.com/fivetwenty-io/discord-resource/pkg/id"

// ChannelRequests builds requests for channels and their 1:M relationships
// other than messages.
type ChannelRequests interface {
	Channel(channelID id.ChannelID) *Request
	UpdateChannel(channelID id.ChannelID) *Request
	DeleteChannel(channelID id.ChannelID) *Request
	FollowNewsChannel(channelID, webhookChannelID id.ChannelID) *Request
	CreateTypingTrigger(channelID id.ChannelID) *Request

	ChannelInvites(channelID id.ChannelID) *Request
	CreateInvite(channelID id.ChannelID) *Request

	UpdateChannelPermission(channelID id.ChannelID, overwrite PermissionOverwrite) *Request
	DeleteChannelPermission(channelID id.ChannelID, target OverwriteTarget) *Request

	Pins(channelID id.ChannelID) *Request
	CreatePin(channelID id.ChannelID, messageID id.MessageID) *Request
	DeletePin(channelID id.ChannelID, messageID id.MessageID) *Request

	ChannelWebhooks(channelID id.ChannelID) *Request
	CreateWebhook(channelID id.ChannelID, name string) (*Request, error)
}

// MessageRequests builds requests for channel messages.
type MessageRequests interface {
	ChannelMessages(channelID id.ChannelID) *Request
	Message(channelID id.ChannelID, messageID id.MessageID) *Request
	CreateMessage(channelID id.ChannelID) *Request
	UpdateMessage(channelID id.ChannelID, messageID id.MessageID) *Request
	DeleteMessage(channelID id.ChannelID, messageID id.MessageID) *Request
	DeleteMessages(channelID id.ChannelID, messageIDs []id.MessageID) (*Request, error)
	CrosspostMessage(channelID id.ChannelID, messageID id.MessageID) *Request
}

// ReactionRequests builds requests for a message's reactions.
type ReactionRequests interface {
	Reactions(channelID id.ChannelID, messageID id.MessageID, emoji ReactionType) (*Request, error)
	CreateReaction(channelID id.ChannelID, messageID id.MessageID, emoji ReactionType) (*Request, error)
	DeleteCurrentUserReaction(channelID id.ChannelID, messageID id.MessageID, emoji ReactionType) (*Request, error)
	DeleteReaction(channelID id.ChannelID, messageID id.MessageID, emoji ReactionType, userID id.UserID) (*Request, error)
	DeleteAllReaction(channelID id.ChannelID, messageID id.MessageID, emoji ReactionType) (*Request, error)
	DeleteAllReactions(channelID id.ChannelID, messageID id.MessageID) *Request
}

// GuildRequests builds requests for guilds and their relationships other
// than members.
type GuildRequests interface {
	Guild(guildID id.GuildID) *Request
	CreateGuild(name string) (*Request, error)
	UpdateGuild(guildID id.GuildID) *Request
	DeleteGuild(guildID id.GuildID) *Request
	CreateGuildFromTemplate(code id.TemplateCode, name string) (*Request, error)

	GuildPreview(guildID id.GuildID) *Request
	GuildVanityURL(guildID id.GuildID) *Request
	GuildWelcomeScreen(guildID id.GuildID) *Request
	UpdateGuildWelcomeScreen(guildID id.GuildID) *Request
	GuildWidget(guildID id.GuildID) *Request
	UpdateGuildWidget(guildID id.GuildID) *Request

	AuditLog(guildID id.GuildID) *Request

	Bans(guildID id.GuildID) *Request
	Ban(guildID id.GuildID, userID id.UserID) *Request
	CreateBan(guildID id.GuildID, userID id.UserID) *Request
	DeleteBan(guildID id.GuildID, userID id.UserID) *Request

	GuildChannels(guildID id.GuildID) *Request
	CreateGuildChannel(guildID id.GuildID, name string) (*Request, error)
	UpdateGuildChannelPositions(guildID id.GuildID, positions []ChannelPosition) *Request

	Emojis(guildID id.GuildID) *Request
	Emoji(guildID id.GuildID, emojiID id.EmojiID) *Request
	CreateEmoji(guildID id.GuildID, name, image string) (*Request, error)
	UpdateEmoji(guildID id.GuildID, emojiID id.EmojiID) *Request
	DeleteEmoji(guildID id.GuildID, emojiID id.EmojiID) *Request

	GuildIntegrations(guildID id.GuildID) *Request
	DeleteGuildIntegration(guildID id.GuildID, integrationID id.IntegrationID) *Request

	GuildInvites(guildID id.GuildID) *Request

	GuildPruneCount(guildID id.GuildID) *Request
	CreateGuildPrune(guildID id.GuildID) *Request

	Roles(guildID id.GuildID) *Request
	CreateRole(guildID id.GuildID) *Request
	UpdateRole(guildID id.GuildID, roleID id.RoleID) *Request
	DeleteRole(guildID id.GuildID, roleID id.RoleID) *Request
	UpdateRolePositions(guildID id.GuildID, positions []RolePosition) *Request

	Templates(guildID id.GuildID) *Request
	CreateTemplate(guildID id.GuildID, name string) (*Request, error)
	SyncTemplate(guildID id.GuildID, code id.TemplateCode) *Request
	UpdateTemplate(guildID id.GuildID, code id.TemplateCode) *Request
	DeleteTemplate(guildID id.GuildID, code id.TemplateCode) *Request

	GuildVoiceRegions(guildID id.GuildID) *Request
	UpdateUserVoiceState(guildID id.GuildID, userID id.UserID, channelID id.ChannelID) *Request
	UpdateCurrentUserVoiceState(guildID id.GuildID, channelID id.ChannelID) *Request

	GuildWebhooks(guildID id.GuildID) *Request
}

// MemberRequests builds requests for guild members.
type MemberRequests interface {
	GuildMembers(guildID id.GuildID) *Request
	GuildMember(guildID id.GuildID, userID id.UserID) *Request
	AddGuildMember(guildID id.GuildID, userID id.UserID, accessToken string) *Request
	UpdateGuildMember(guildID id.GuildID, userID id.UserID) *Request
	RemoveGuildMember(guildID id.GuildID, userID id.UserID) *Request
	SearchGuildMembers(guildID id.GuildID, query string) (*Request, error)
	UpdateCurrentMemberNick(guildID id.GuildID, nick string) (*Request, error)
	AddGuildMemberRole(guildID id.GuildID, userID id.UserID, roleID id.RoleID) *Request
	RemoveGuildMemberRole(guildID id.GuildID, userID id.UserID, roleID id.RoleID) *Request
}

// UserRequests builds requests for users and the current user.
type UserRequests interface {
	User(userID id.UserID) *Request
	CurrentUser() *Request
	UpdateCurrentUser() *Request
	CurrentUserGuilds() *Request
	LeaveGuild(guildID id.GuildID) *Request
	CurrentUserConnections() *Request
	CreatePrivateChannel(recipientID id.UserID) *Request
}

// WebhookRequests builds requests for webhooks and webhook messages.
type WebhookRequests interface {
	Webhook(webhookID id.WebhookID) *Request
	UpdateWebhook(webhookID id.WebhookID) *Request
	DeleteWebhook(webhookID id.WebhookID) *Request
	UpdateWebhookWithToken(webhookID id.WebhookID, token id.WebhookToken) *Request
	ExecuteWebhook(webhookID id.WebhookID, token id.WebhookToken) *Request
	WebhookMessage(webhookID id.WebhookID, token id.WebhookToken, messageID id.MessageID) *Request
	UpdateWebhookMessage(webhookID id.WebhookID, token id.WebhookToken, messageID id.MessageID) *Request
	DeleteWebhookMessage(webhookID id.WebhookID, token id.WebhookToken, messageID id.MessageID) *Request
}

// MetaRequests builds requests for top-level resources that have no
// relationships of their own.
type MetaRequests interface {
	Invite(code id.InviteCode) *Request
	DeleteInvite(code id.InviteCode) *Request
	Template(code id.TemplateCode) *Request
	VoiceRegions() *Request
	Gateway() *Request
	GatewayBot() *Request
}

// Transport produces one request per (resource, action) pair. Validated
// factories return a *ValidationError instead of a request when the input is
// known to be rejected by the API.
type Transport interface {
	ChannelRequests
	MessageRequests
	ReactionRequests
	GuildRequests
	MemberRequests
	UserRequests
	WebhookRequests
	MetaRequests
}
