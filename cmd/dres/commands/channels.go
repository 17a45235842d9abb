package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// NewChannelsCommand creates the channels command group.
func NewChannelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "channels",
		Aliases: []string{"channel", "ch"},
		Short:   "Manage channels",
		Long:    "View and manage channels, their messages, pins, reactions and webhooks",
	}

	cmd.AddCommand(newLeafCommand("get CHANNEL_ID", "Get a channel", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			channelID, err := parseChannelID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Channels().Get(channelID), nil
		}))
	cmd.AddCommand(newLeafCommand("delete CHANNEL_ID", "Delete a channel or close a DM", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			channelID, err := parseChannelID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Channels().Delete(channelID), nil
		}))
	cmd.AddCommand(newLeafCommand("typing CHANNEL_ID", "Trigger the typing indicator", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			channelID, err := parseChannelID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Channels().Typing(channelID), nil
		}))

	cmd.AddCommand(newChannelMessagesCommand())
	cmd.AddCommand(newChannelPinsCommand())
	cmd.AddCommand(newChannelReactionsCommand())
	cmd.AddCommand(newChannelWebhooksCommand())

	return cmd
}

// messages builds the messages node of the channel named by args[0].
func messages(root resource.Root, args []string) (resource.ChannelMessageResource, error) {
	channelID, err := parseChannelID(args[0])
	if err != nil {
		return resource.ChannelMessageResource{}, err
	}

	return root.Channels().Messages(channelID), nil
}

func newChannelMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"message", "msg"},
		Short:   "Manage channel messages",
	}

	var limit int

	list := newLeafCommand("list CHANNEL_ID", "List recent messages", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			node, err := messages(root, args)
			if err != nil {
				return nil, err
			}

			req := node.List()
			if limit > 0 {
				req.Query("limit", strconv.Itoa(limit))
			}

			return req, nil
		})
	list.Flags().IntVar(&limit, "limit", 0, "maximum number of messages (1-100)")

	cmd.AddCommand(list)
	cmd.AddCommand(newLeafCommand("get CHANNEL_ID MESSAGE_ID", "Get a message", cobra.ExactArgs(2),
		func(root resource.Root, args []string) (*discord.Request, error) {
			node, err := messages(root, args)
			if err != nil {
				return nil, err
			}

			messageID, err := parseMessageID(args[1])
			if err != nil {
				return nil, err
			}

			return node.Get(messageID), nil
		}))
	cmd.AddCommand(newLeafCommand("crosspost CHANNEL_ID MESSAGE_ID", "Publish a message to following channels", cobra.ExactArgs(2),
		func(root resource.Root, args []string) (*discord.Request, error) {
			node, err := messages(root, args)
			if err != nil {
				return nil, err
			}

			messageID, err := parseMessageID(args[1])
			if err != nil {
				return nil, err
			}

			return node.Crosspost(messageID), nil
		}))
	cmd.AddCommand(newLeafCommand("bulk-delete CHANNEL_ID MESSAGE_ID...", "Delete 2 to 100 messages in one request",
		cobra.MinimumNArgs(2),
		func(root resource.Root, args []string) (*discord.Request, error) {
			node, err := messages(root, args)
			if err != nil {
				return nil, err
			}

			messageIDs, err := parseMessageIDs(args[1:])
			if err != nil {
				return nil, err
			}

			return node.DeleteList(messageIDs)
		}))
	cmd.AddCommand(newMessagesDeleteCommand())
	cmd.AddCommand(newMessagesSendCommand())

	return cmd
}

func newMessagesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CHANNEL_ID MESSAGE_ID...",
		Short: "Delete messages one request at a time",
		Long:  "Delete each message with its own request, reporting every failure",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := CreateRoot(cmd)
			if err != nil {
				return err
			}

			node, err := messages(root, args)
			if err != nil {
				return err
			}

			return executeEach(cmd, args[1:], func(arg string) (*discord.Request, error) {
				messageID, err := parseMessageID(arg)
				if err != nil {
					return nil, err
				}

				return node.Delete(messageID), nil
			})
		},
	}
}

func newMessagesSendCommand() *cobra.Command {
	var (
		content string
		tts     bool
	)

	cmd := newLeafCommand("send CHANNEL_ID", "Send a message", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			node, err := messages(root, args)
			if err != nil {
				return nil, err
			}

			req := node.Post().Field("content", content)
			if tts {
				req.Field("tts", true)
			}

			return req, nil
		})
	cmd.Flags().StringVar(&content, "content", "", "message content")
	cmd.Flags().BoolVar(&tts, "tts", false, "send as text-to-speech")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newChannelPinsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pins",
		Aliases: []string{"pin"},
		Short:   "Manage pinned messages",
	}

	pin := func(add bool) buildFunc {
		return func(root resource.Root, args []string) (*discord.Request, error) {
			channelID, err := parseChannelID(args[0])
			if err != nil {
				return nil, err
			}

			messageID, err := parseMessageID(args[1])
			if err != nil {
				return nil, err
			}

			if add {
				return root.Channels().Pins(channelID).Post(messageID), nil
			}

			return root.Channels().Pins(channelID).Delete(messageID), nil
		}
	}

	cmd.AddCommand(newLeafCommand("list CHANNEL_ID", "List pinned messages", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			channelID, err := parseChannelID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Channels().Pins(channelID).List(), nil
		}))
	cmd.AddCommand(newLeafCommand("add CHANNEL_ID MESSAGE_ID", "Pin a message", cobra.ExactArgs(2), pin(true)))
	cmd.AddCommand(newLeafCommand("remove CHANNEL_ID MESSAGE_ID", "Unpin a message", cobra.ExactArgs(2), pin(false)))

	return cmd
}

func newChannelReactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reactions",
		Aliases: []string{"reaction"},
		Short:   "Manage message reactions",
	}

	var emoji, custom string

	reactions := func(root resource.Root, args []string) (resource.ChannelMessageReactionResource, error) {
		node, err := messages(root, args)
		if err != nil {
			return resource.ChannelMessageReactionResource{}, err
		}

		messageID, err := parseMessageID(args[1])
		if err != nil {
			return resource.ChannelMessageReactionResource{}, err
		}

		return node.Reactions(messageID), nil
	}

	list := newLeafCommand("list CHANNEL_ID MESSAGE_ID", "List users who reacted with an emoji", cobra.ExactArgs(2),
		func(root resource.Root, args []string) (*discord.Request, error) {
			node, err := reactions(root, args)
			if err != nil {
				return nil, err
			}

			reaction, err := parseReaction(emoji, custom)
			if err != nil {
				return nil, err
			}

			return node.List(reaction)
		})

	add := newLeafCommand("add CHANNEL_ID MESSAGE_ID", "React to a message", cobra.ExactArgs(2),
		func(root resource.Root, args []string) (*discord.Request, error) {
			node, err := reactions(root, args)
			if err != nil {
				return nil, err
			}

			reaction, err := parseReaction(emoji, custom)
			if err != nil {
				return nil, err
			}

			return node.Put(reaction)
		})

	clearCmd := newLeafCommand("clear CHANNEL_ID MESSAGE_ID", "Remove all reactions, or all reactions for one emoji",
		cobra.ExactArgs(2),
		func(root resource.Root, args []string) (*discord.Request, error) {
			node, err := reactions(root, args)
			if err != nil {
				return nil, err
			}

			if emoji == "" && custom == "" {
				return node.DeleteList(), nil
			}

			reaction, err := parseReaction(emoji, custom)
			if err != nil {
				return nil, err
			}

			return node.DeleteEmoji(reaction)
		})

	for _, sub := range []*cobra.Command{list, add, clearCmd} {
		sub.Flags().StringVar(&emoji, "emoji", "", "unicode emoji")
		sub.Flags().StringVar(&custom, "custom-emoji", "", "custom emoji as NAME:ID")
		cmd.AddCommand(sub)
	}

	return cmd
}

func newChannelWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage channel webhooks",
	}

	cmd.AddCommand(newLeafCommand("list CHANNEL_ID", "List the channel's webhooks", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			channelID, err := parseChannelID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Channels().Webhooks(channelID).List(), nil
		}))
	cmd.AddCommand(newLeafCommand("create CHANNEL_ID NAME", "Create a webhook", cobra.ExactArgs(2),
		func(root resource.Root, args []string) (*discord.Request, error) {
			channelID, err := parseChannelID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Channels().Webhooks(channelID).Post(args[1])
		}))

	return cmd
}
