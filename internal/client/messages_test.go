package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

func TestMessageRoutes(t *testing.T) {
	t.Parallel()

	channelID := id.NewChannelID(123)
	messageID := id.NewMessageID(456)

	runRouteCases(t, []routeCase{
		{"list", func(c *Client) *discord.Request { return c.ChannelMessages(channelID) },
			RouteGetChannelMessages, "GET", "/channels/123/messages", []string{"channel_id"}},
		{"get", func(c *Client) *discord.Request { return c.Message(channelID, messageID) },
			RouteGetMessage, "GET", "/channels/123/messages/456", []string{"channel_id", "message_id"}},
		{"create", func(c *Client) *discord.Request { return c.CreateMessage(channelID) },
			RouteCreateMessage, "POST", "/channels/123/messages", []string{"channel_id"}},
		{"update", func(c *Client) *discord.Request { return c.UpdateMessage(channelID, messageID) },
			RouteUpdateMessage, "PATCH", "/channels/123/messages/456", []string{"channel_id", "message_id"}},
		{"delete", func(c *Client) *discord.Request { return c.DeleteMessage(channelID, messageID) },
			RouteDeleteMessage, "DELETE", "/channels/123/messages/456", []string{"channel_id", "message_id"}},
		{"bulk delete", func(c *Client) *discord.Request {
			return valid(c.DeleteMessages(channelID, []id.MessageID{1, 2}))
		}, RouteDeleteMessages, "POST", "/channels/123/messages/bulk-delete", []string{"channel_id"}},
		{"crosspost", func(c *Client) *discord.Request { return c.CrosspostMessage(channelID, messageID) },
			RouteCrosspostMessage, "POST", "/channels/123/messages/456/crosspost", []string{"channel_id", "message_id"}},
	})
}

func TestDeleteMessages(t *testing.T) {
	t.Parallel()

	client := NewWithExecutor(nil)

	t.Run("sends ids as strings", func(t *testing.T) {
		t.Parallel()

		req, err := client.DeleteMessages(id.NewChannelID(1), []id.MessageID{10, 20, 30})
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"messages": []string{"10", "20", "30"}}, req.Payload())
	})

	t.Run("rejects a single id", func(t *testing.T) {
		t.Parallel()

		req, err := client.DeleteMessages(id.NewChannelID(1), []id.MessageID{10})
		require.Error(t, err)
		assert.Nil(t, req)
		assert.True(t, discord.IsValidation(err))
	})

	t.Run("rejects zero ids", func(t *testing.T) {
		t.Parallel()

		_, err := client.DeleteMessages(id.NewChannelID(1), []id.MessageID{10, 0})
		require.Error(t, err)
		assert.True(t, discord.IsValidation(err))
	})
}
