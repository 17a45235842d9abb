package resource

import (
	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// WebhookResource addresses /webhooks.
type WebhookResource struct {
	transport discord.Transport
}

// Get returns the webhook.
func (r WebhookResource) Get(webhookID id.WebhookID) *discord.Request {
	return r.transport.Webhook(webhookID)
}

// Patch modifies the webhook.
func (r WebhookResource) Patch(webhookID id.WebhookID) *discord.Request {
	return r.transport.UpdateWebhook(webhookID)
}

// Delete deletes the webhook.
func (r WebhookResource) Delete(webhookID id.WebhookID) *discord.Request {
	return r.transport.DeleteWebhook(webhookID)
}

// PatchWithToken updates a webhook authenticating with its token instead of
// the client's credentials.
func (r WebhookResource) PatchWithToken(webhookID id.WebhookID, token id.WebhookToken) *discord.Request {
	return r.transport.UpdateWebhookWithToken(webhookID, token)
}

// Messages addresses the messages sent through a webhook. The returned handle
// carries the webhook token; build one per call chain and do not store it.
func (r WebhookResource) Messages(webhookID id.WebhookID, token id.WebhookToken) WebhookMessageResource {
	return WebhookMessageResource{transport: r.transport, webhookID: webhookID, token: token}
}

// WebhookMessageResource addresses /webhooks/{webhook_id}/{webhook_token}.
// The token appears in paths only; logs see the redacted route.
type WebhookMessageResource struct {
	transport discord.Transport
	webhookID id.WebhookID
	token     id.WebhookToken
}

// WebhookID returns the webhook the node addresses.
func (r WebhookMessageResource) WebhookID() id.WebhookID { return r.webhookID }

// Post executes the webhook.
func (r WebhookMessageResource) Post() *discord.Request {
	return r.transport.ExecuteWebhook(r.webhookID, r.token)
}

// Get returns a message the webhook sent.
func (r WebhookMessageResource) Get(messageID id.MessageID) *discord.Request {
	return r.transport.WebhookMessage(r.webhookID, r.token, messageID)
}

// Patch edits a message the webhook sent.
func (r WebhookMessageResource) Patch(messageID id.MessageID) *discord.Request {
	return r.transport.UpdateWebhookMessage(r.webhookID, r.token, messageID)
}

// Delete deletes a message the webhook sent.
func (r WebhookMessageResource) Delete(messageID id.MessageID) *discord.Request {
	return r.transport.DeleteWebhookMessage(r.webhookID, r.token, messageID)
}
