package client

// Route names. Each names exactly one API operation and is used for logging,
// dry-run output and validation errors.
const (
	RouteGetChannel              = "GetChannel"
	RouteUpdateChannel           = "UpdateChannel"
	RouteDeleteChannel           = "DeleteChannel"
	RouteFollowNewsChannel       = "FollowNewsChannel"
	RouteCreateTypingTrigger     = "CreateTypingTrigger"
	RouteGetChannelInvites       = "GetChannelInvites"
	RouteCreateInvite            = "CreateInvite"
	RouteUpdateChannelPermission = "UpdateChannelPermission"
	RouteDeleteChannelPermission = "DeleteChannelPermission"
	RouteGetPins                 = "GetPins"
	RouteCreatePin               = "CreatePin"
	RouteDeletePin               = "DeletePin"
	RouteGetChannelWebhooks      = "GetChannelWebhooks"
	RouteCreateWebhook           = "CreateWebhook"

	RouteGetChannelMessages = "GetChannelMessages"
	RouteGetMessage         = "GetMessage"
	RouteCreateMessage      = "CreateMessage"
	RouteUpdateMessage      = "UpdateMessage"
	RouteDeleteMessage      = "DeleteMessage"
	RouteDeleteMessages     = "DeleteMessages"
	RouteCrosspostMessage   = "CrosspostMessage"

	RouteGetReactions              = "GetReactions"
	RouteCreateReaction            = "CreateReaction"
	RouteDeleteCurrentUserReaction = "DeleteCurrentUserReaction"
	RouteDeleteReaction            = "DeleteReaction"
	RouteDeleteAllReaction         = "DeleteAllReaction"
	RouteDeleteAllReactions        = "DeleteAllReactions"

	RouteGetGuild                    = "GetGuild"
	RouteCreateGuild                 = "CreateGuild"
	RouteUpdateGuild                 = "UpdateGuild"
	RouteDeleteGuild                 = "DeleteGuild"
	RouteCreateGuildFromTemplate     = "CreateGuildFromTemplate"
	RouteGetGuildPreview             = "GetGuildPreview"
	RouteGetGuildVanityURL           = "GetGuildVanityURL"
	RouteGetGuildWelcomeScreen       = "GetGuildWelcomeScreen"
	RouteUpdateGuildWelcomeScreen    = "UpdateGuildWelcomeScreen"
	RouteGetGuildWidget              = "GetGuildWidget"
	RouteUpdateGuildWidget           = "UpdateGuildWidget"
	RouteGetAuditLog                 = "GetAuditLog"
	RouteGetBans                     = "GetBans"
	RouteGetBan                      = "GetBan"
	RouteCreateBan                   = "CreateBan"
	RouteDeleteBan                   = "DeleteBan"
	RouteGetGuildChannels            = "GetGuildChannels"
	RouteCreateGuildChannel          = "CreateGuildChannel"
	RouteUpdateGuildChannelPositions = "UpdateGuildChannelPositions"
	RouteGetEmojis                   = "GetEmojis"
	RouteGetEmoji                    = "GetEmoji"
	RouteCreateEmoji                 = "CreateEmoji"
	RouteUpdateEmoji                 = "UpdateEmoji"
	RouteDeleteEmoji                 = "DeleteEmoji"
	RouteGetGuildIntegrations        = "GetGuildIntegrations"
	RouteDeleteGuildIntegration      = "DeleteGuildIntegration"
	RouteGetGuildInvites             = "GetGuildInvites"
	RouteGetGuildPruneCount          = "GetGuildPruneCount"
	RouteCreateGuildPrune            = "CreateGuildPrune"
	RouteGetGuildRoles               = "GetGuildRoles"
	RouteCreateRole                  = "CreateRole"
	RouteUpdateRole                  = "UpdateRole"
	RouteDeleteRole                  = "DeleteRole"
	RouteUpdateRolePositions         = "UpdateRolePositions"
	RouteGetTemplates                = "GetTemplates"
	RouteCreateTemplate              = "CreateTemplate"
	RouteSyncTemplate                = "SyncTemplate"
	RouteUpdateTemplate              = "UpdateTemplate"
	RouteDeleteTemplate              = "DeleteTemplate"
	RouteGetGuildVoiceRegions        = "GetGuildVoiceRegions"
	RouteUpdateUserVoiceState        = "UpdateUserVoiceState"
	RouteUpdateCurrentUserVoiceState = "UpdateCurrentUserVoiceState"
	RouteGetGuildWebhooks            = "GetGuildWebhooks"

	RouteGetGuildMembers      = "GetGuildMembers"
	RouteGetMember            = "GetMember"
	RouteAddGuildMember       = "AddGuildMember"
	RouteUpdateGuildMember    = "UpdateGuildMember"
	RouteRemoveMember         = "RemoveMember"
	RouteSearchGuildMembers   = "SearchGuildMembers"
	RouteUpdateCurrentMember  = "UpdateCurrentMember"
	RouteAddRoleToMember      = "AddRoleToMember"
	RouteRemoveRoleFromMember = "RemoveRoleFromMember"

	RouteGetUser                   = "GetUser"
	RouteGetCurrentUser            = "GetCurrentUser"
	RouteUpdateCurrentUser         = "UpdateCurrentUser"
	RouteGetCurrentUserGuilds      = "GetCurrentUserGuilds"
	RouteLeaveGuild                = "LeaveGuild"
	RouteGetCurrentUserConnections = "GetCurrentUserConnections"
	RouteCreatePrivateChannel      = "CreatePrivateChannel"

	RouteGetWebhook             = "GetWebhook"
	RouteUpdateWebhook          = "UpdateWebhook"
	RouteDeleteWebhook          = "DeleteWebhook"
	RouteUpdateWebhookWithToken = "UpdateWebhookWithToken"
	RouteExecuteWebhook         = "ExecuteWebhook"
	RouteGetWebhookMessage      = "GetWebhookMessage"
	RouteUpdateWebhookMessage   = "UpdateWebhookMessage"
	RouteDeleteWebhookMessage   = "DeleteWebhookMessage"

	RouteGetInvite       = "GetInvite"
	RouteDeleteInvite    = "DeleteInvite"
	RouteGetTemplate     = "GetTemplate"
	RouteGetVoiceRegions = "GetVoiceRegions"
	RouteGetGateway      = "GetGateway"
	RouteGetGatewayBot   = "GetGatewayBot"
)

// Path templates.
const (
	pathChannel            = "/channels/{channel_id}"
	pathChannelFollowers   = pathChannel + "/followers"
	pathChannelTyping      = pathChannel + "/typing"
	pathChannelInvites     = pathChannel + "/invites"
	pathChannelPermission  = pathChannel + "/permissions/{overwrite_id}"
	pathChannelPins        = pathChannel + "/pins"
	pathChannelPin         = pathChannelPins + "/{message_id}"
	pathChannelWebhooks    = pathChannel + "/webhooks"
	pathMessages           = pathChannel + "/messages"
	pathMessage            = pathMessages + "/{message_id}"
	pathMessagesBulkDelete = pathMessages + "/bulk-delete"
	pathMessageCrosspost   = pathMessage + "/crosspost"
	pathReactions          = pathMessage + "/reactions"
	pathReaction           = pathReactions + "/{emoji}"
	pathReactionMe         = pathReaction + "/@me"
	pathReactionUser       = pathReaction + "/{user_id}"

	pathGuilds             = "/guilds"
	pathGuild              = pathGuilds + "/{guild_id}"
	pathGuildTemplateCode  = pathGuilds + "/templates/{template_code}"
	pathGuildPreview       = pathGuild + "/preview"
	pathGuildVanityURL     = pathGuild + "/vanity-url"
	pathGuildWelcomeScreen = pathGuild + "/welcome-screen"
	pathGuildWidgetJSON    = pathGuild + "/widget.json"
	pathGuildWidget        = pathGuild + "/widget"
	pathGuildAuditLogs     = pathGuild + "/audit-logs"
	pathGuildBans          = pathGuild + "/bans"
	pathGuildBan           = pathGuildBans + "/{user_id}"
	pathGuildChannels      = pathGuild + "/channels"
	pathGuildEmojis        = pathGuild + "/emojis"
	pathGuildEmoji         = pathGuildEmojis + "/{emoji_id}"
	pathGuildIntegrations  = pathGuild + "/integrations"
	pathGuildIntegration   = pathGuildIntegrations + "/{integration_id}"
	pathGuildInvites       = pathGuild + "/invites"
	pathGuildPrune         = pathGuild + "/prune"
	pathGuildRoles         = pathGuild + "/roles"
	pathGuildRole          = pathGuildRoles + "/{role_id}"
	pathGuildTemplates     = pathGuild + "/templates"
	pathGuildTemplate      = pathGuildTemplates + "/{template_code}"
	pathGuildRegions       = pathGuild + "/regions"
	pathGuildVoiceState    = pathGuild + "/voice-states/{user_id}"
	pathGuildVoiceStateMe  = pathGuild + "/voice-states/@me"
	pathGuildWebhooks      = pathGuild + "/webhooks"
	pathGuildMembers       = pathGuild + "/members"
	pathGuildMember        = pathGuildMembers + "/{user_id}"
	pathGuildMembersSearch = pathGuildMembers + "/search"
	pathGuildMemberMe      = pathGuildMembers + "/@me"
	pathGuildMemberRole    = pathGuildMember + "/roles/{role_id}"

	pathUser              = "/users/{user_id}"
	pathUserMe            = "/users/@me"
	pathUserMeGuilds      = pathUserMe + "/guilds"
	pathUserMeGuild       = pathUserMeGuilds + "/{guild_id}"
	pathUserMeConnections = pathUserMe + "/connections"
	pathUserMeChannels    = pathUserMe + "/channels"

	pathWebhook        = "/webhooks/{webhook_id}"
	pathWebhookToken   = pathWebhook + "/{webhook_token}"
	pathWebhookMessage = pathWebhookToken + "/messages/{message_id}"

	pathInvite       = "/invites/{invite_code}"
	pathVoiceRegions = "/voice/regions"
	pathGateway      = "/gateway"
	pathGatewayBot   = pathGateway + "/bot"
)

// Parameter names.
const (
	paramChannelID     = "channel_id"
	paramMessageID     = "message_id"
	paramEmoji         = "emoji"
	paramUserID        = "user_id"
	paramOverwriteID   = "overwrite_id"
	paramGuildID       = "guild_id"
	paramTemplateCode  = "template_code"
	paramEmojiID       = "emoji_id"
	paramIntegrationID = "integration_id"
	paramRoleID        = "role_id"
	paramWebhookID     = "webhook_id"
	paramWebhookToken  = "webhook_token"
	paramInviteCode    = "invite_code"
	paramRecipientID   = "recipient_id"
)
