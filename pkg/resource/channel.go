package resource

import (
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// ChannelResource addresses /channels and is the parent of every
// channel-scoped relationship.
type ChannelResource struct {
	transport discord.Transport
}

// Get returns the channel.
func (r ChannelResource) Get(channelID id.ChannelID) *discord.Request {
	return r.transport.Channel(channelID)
}

// Patch modifies the channel.
func (r ChannelResource) Patch(channelID id.ChannelID) *discord.Request {
	return r.transport.UpdateChannel(channelID)
}

// Delete deletes the channel, or closes it for a DM.
func (r ChannelResource) Delete(channelID id.ChannelID) *discord.Request {
	return r.transport.DeleteChannel(channelID)
}

// Follow subscribes webhookChannelID to the announcement channel channelID.
func (r ChannelResource) Follow(channelID, webhookChannelID id.ChannelID) *discord.Request {
	return r.transport.FollowNewsChannel(channelID, webhookChannelID)
}

// Typing triggers the typing indicator in channelID.
func (r ChannelResource) Typing(channelID id.ChannelID) *discord.Request {
	return r.transport.CreateTypingTrigger(channelID)
}

// Invites addresses the channel's invites.
func (r ChannelResource) Invites(channelID id.ChannelID) ChannelInviteResource {
	return ChannelInviteResource{transport: r.transport, channelID: channelID}
}

// Messages addresses the channel's messages.
func (r ChannelResource) Messages(channelID id.ChannelID) ChannelMessageResource {
	return ChannelMessageResource{transport: r.transport, channelID: channelID}
}

// PermissionOverwrites addresses the channel's permission overwrites.
func (r ChannelResource) PermissionOverwrites(channelID id.ChannelID) ChannelPermissionOverwriteResource {
	return ChannelPermissionOverwriteResource{transport: r.transport, channelID: channelID}
}

// Pins addresses the channel's pinned messages.
func (r ChannelResource) Pins(channelID id.ChannelID) ChannelPinResource {
	return ChannelPinResource{transport: r.transport, channelID: channelID}
}

// Webhooks addresses the channel's webhooks.
func (r ChannelResource) Webhooks(channelID id.ChannelID) ChannelWebhookResource {
	return ChannelWebhookResource{transport: r.transport, channelID: channelID}
}

// ChannelInviteResource addresses /channels/{channel_id}/invites.
type ChannelInviteResource struct {
	transport discord.Transport
	channelID id.ChannelID
}

// ChannelID returns the channel the node addresses.
func (r ChannelInviteResource) ChannelID() id.ChannelID { return r.channelID }

// List returns the channel's invites.
func (r ChannelInviteResource) List() *discord.Request {
	return r.transport.ChannelInvites(r.channelID)
}

// Post creates an invite for the channel.
func (r ChannelInviteResource) Post() *discord.Request {
	return r.transport.CreateInvite(r.channelID)
}

// ChannelMessageResource addresses /channels/{channel_id}/messages.
type ChannelMessageResource struct {
	transport discord.Transport
	channelID id.ChannelID
}

// ChannelID returns the channel the node addresses.
func (r ChannelMessageResource) ChannelID() id.ChannelID { return r.channelID }

// List returns messages from the channel.
func (r ChannelMessageResource) List() *discord.Request {
	return r.transport.ChannelMessages(r.channelID)
}

// Get returns a single message.
func (r ChannelMessageResource) Get(messageID id.MessageID) *discord.Request {
	return r.transport.Message(r.channelID, messageID)
}

// Post sends a message to the channel.
func (r ChannelMessageResource) Post() *discord.Request {
	return r.transport.CreateMessage(r.channelID)
}

// Patch edits a message.
func (r ChannelMessageResource) Patch(messageID id.MessageID) *discord.Request {
	return r.transport.UpdateMessage(r.channelID, messageID)
}

// Delete deletes a message.
func (r ChannelMessageResource) Delete(messageID id.MessageID) *discord.Request {
	return r.transport.DeleteMessage(r.channelID, messageID)
}

// DeleteList bulk deletes between 2 and 100 messages.
func (r ChannelMessageResource) DeleteList(messageIDs []id.MessageID) (*discord.Request, error) {
	return r.transport.DeleteMessages(r.channelID, messageIDs)
}

// Crosspost publishes a message in an announcement channel to its followers.
func (r ChannelMessageResource) Crosspost(messageID id.MessageID) *discord.Request {
	return r.transport.CrosspostMessage(r.channelID, messageID)
}

// Reactions addresses the reactions on a message.
func (r ChannelMessageResource) Reactions(messageID id.MessageID) ChannelMessageReactionResource {
	return ChannelMessageReactionResource{transport: r.transport, channelID: r.channelID, messageID: messageID}
}

// ChannelMessageReactionResource addresses
// /channels/{channel_id}/messages/{message_id}/reactions. Every operation
// taking an emoji validates it first.
type ChannelMessageReactionResource struct {
	transport discord.Transport
	channelID id.ChannelID
	messageID id.MessageID
}

// ChannelID returns the channel the node addresses.
func (r ChannelMessageReactionResource) ChannelID() id.ChannelID { return r.channelID }

// MessageID returns the message the node addresses.
func (r ChannelMessageReactionResource) MessageID() id.MessageID { return r.messageID }

// List returns the users that reacted with emoji.
func (r ChannelMessageReactionResource) List(emoji discord.ReactionType) (*discord.Request, error) {
	return r.transport.Reactions(r.channelID, r.messageID, emoji)
}

// Put reacts with emoji as the current user.
func (r ChannelMessageReactionResource) Put(emoji discord.ReactionType) (*discord.Request, error) {
	return r.transport.CreateReaction(r.channelID, r.messageID, emoji)
}

// DeleteCurrentUser removes the current user's emoji reaction.
func (r ChannelMessageReactionResource) DeleteCurrentUser(emoji discord.ReactionType) (*discord.Request, error) {
	return r.transport.DeleteCurrentUserReaction(r.channelID, r.messageID, emoji)
}

// Delete removes another user's emoji reaction.
func (r ChannelMessageReactionResource) Delete(emoji discord.ReactionType, userID id.UserID) (*discord.Request, error) {
	return r.transport.DeleteReaction(r.channelID, r.messageID, emoji, userID)
}

// DeleteEmoji removes every reaction with emoji.
func (r ChannelMessageReactionResource) DeleteEmoji(emoji discord.ReactionType) (*discord.Request, error) {
	return r.transport.DeleteAllReaction(r.channelID, r.messageID, emoji)
}

// DeleteList removes every reaction on the message.
func (r ChannelMessageReactionResource) DeleteList() *discord.Request {
	return r.transport.DeleteAllReactions(r.channelID, r.messageID)
}

// ChannelPermissionOverwriteResource addresses
// /channels/{channel_id}/permissions.
type ChannelPermissionOverwriteResource struct {
	transport discord.Transport
	channelID id.ChannelID
}

// ChannelID returns the channel the node addresses.
func (r ChannelPermissionOverwriteResource) ChannelID() id.ChannelID { return r.channelID }

// Put creates or replaces the overwrite for its target.
func (r ChannelPermissionOverwriteResource) Put(overwrite discord.PermissionOverwrite) *discord.Request {
	return r.transport.UpdateChannelPermission(r.channelID, overwrite)
}

// Delete removes the overwrite for target.
func (r ChannelPermissionOverwriteResource) Delete(target discord.OverwriteTarget) *discord.Request {
	return r.transport.DeleteChannelPermission(r.channelID, target)
}

// ChannelPinResource addresses /channels/{channel_id}/pins.
type ChannelPinResource struct {
	transport discord.Transport
	channelID id.ChannelID
}

// ChannelID returns the channel the node addresses.
func (r ChannelPinResource) ChannelID() id.ChannelID { return r.channelID }

// List returns the pinned messages.
func (r ChannelPinResource) List() *discord.Request {
	return r.transport.Pins(r.channelID)
}

// Post pins a message.
func (r ChannelPinResource) Post(messageID id.MessageID) *discord.Request {
	return r.transport.CreatePin(r.channelID, messageID)
}

// Delete unpins a message.
func (r ChannelPinResource) Delete(messageID id.MessageID) *discord.Request {
	return r.transport.DeletePin(r.channelID, messageID)
}

// ChannelWebhookResource addresses /channels/{channel_id}/webhooks.
type ChannelWebhookResource struct {
	transport discord.Transport
	channelID id.ChannelID
}

// ChannelID returns the channel the node addresses.
func (r ChannelWebhookResource) ChannelID() id.ChannelID { return r.channelID }

// List returns the channel's webhooks.
func (r ChannelWebhookResource) List() *discord.Request {
	return r.transport.ChannelWebhooks(r.channelID)
}

// Post creates a webhook. The name must be 1 to 80 characters and must not
// contain "clyde".
func (r ChannelWebhookResource) Post(name string) (*discord.Request, error) {
	return r.transport.CreateWebhook(r.channelID, name)
}
