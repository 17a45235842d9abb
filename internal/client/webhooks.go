package client

import (
	"net/http"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

func webhookParams(webhookID id.WebhookID, token id.WebhookToken) []discord.Param {
	return []discord.Param{
		discord.P(paramWebhookID, webhookID),
		discord.SecretP(paramWebhookToken, token.Value()),
	}
}

// Webhook implements discord.WebhookRequests.Webhook.
func (c *Client) Webhook(webhookID id.WebhookID) *discord.Request {
	return c.request(RouteGetWebhook, http.MethodGet, pathWebhook, discord.P(paramWebhookID, webhookID))
}

// UpdateWebhook implements discord.WebhookRequests.UpdateWebhook.
func (c *Client) UpdateWebhook(webhookID id.WebhookID) *discord.Request {
	return c.request(RouteUpdateWebhook, http.MethodPatch, pathWebhook, discord.P(paramWebhookID, webhookID))
}

// DeleteWebhook implements discord.WebhookRequests.DeleteWebhook.
func (c *Client) DeleteWebhook(webhookID id.WebhookID) *discord.Request {
	return c.request(RouteDeleteWebhook, http.MethodDelete, pathWebhook, discord.P(paramWebhookID, webhookID))
}

// UpdateWebhookWithToken implements discord.WebhookRequests.UpdateWebhookWithToken.
func (c *Client) UpdateWebhookWithToken(webhookID id.WebhookID, token id.WebhookToken) *discord.Request {
	return c.request(RouteUpdateWebhookWithToken, http.MethodPatch, pathWebhookToken, webhookParams(webhookID, token)...)
}

// ExecuteWebhook implements discord.WebhookRequests.ExecuteWebhook.
func (c *Client) ExecuteWebhook(webhookID id.WebhookID, token id.WebhookToken) *discord.Request {
	return c.request(RouteExecuteWebhook, http.MethodPost, pathWebhookToken, webhookParams(webhookID, token)...)
}

// WebhookMessage implements discord.WebhookRequests.WebhookMessage.
func (c *Client) WebhookMessage(webhookID id.WebhookID, token id.WebhookToken, messageID id.MessageID) *discord.Request {
	return c.request(RouteGetWebhookMessage, http.MethodGet, pathWebhookMessage,
		append(webhookParams(webhookID, token), discord.P(paramMessageID, messageID))...)
}

// UpdateWebhookMessage implements discord.WebhookRequests.UpdateWebhookMessage.
func (c *Client) UpdateWebhookMessage(webhookID id.WebhookID, token id.WebhookToken, messageID id.MessageID) *discord.Request {
	return c.request(RouteUpdateWebhookMessage, http.MethodPatch, pathWebhookMessage,
		append(webhookParams(webhookID, token), discord.P(paramMessageID, messageID))...)
}

// DeleteWebhookMessage implements discord.WebhookRequests.DeleteWebhookMessage.
func (c *Client) DeleteWebhookMessage(webhookID id.WebhookID, token id.WebhookToken, messageID id.MessageID) *discord.Request {
	return c.request(RouteDeleteWebhookMessage, http.MethodDelete, pathWebhookMessage,
		append(webhookParams(webhookID, token), discord.P(paramMessageID, messageID))...)
}
