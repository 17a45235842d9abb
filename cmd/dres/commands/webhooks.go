package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook", "wh"},
		Short:   "Manage and execute webhooks",
	}

	cmd.AddCommand(newLeafCommand("get WEBHOOK_ID", "Get a webhook", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			webhookID, err := parseWebhookID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Webhooks().Get(webhookID), nil
		}))
	cmd.AddCommand(newWebhookExecuteCommand())

	return cmd
}

func newWebhookExecuteCommand() *cobra.Command {
	var (
		content  string
		username string
		wait     bool
	)

	cmd := newLeafCommand("execute WEBHOOK_ID TOKEN", "Send a message through a webhook", cobra.ExactArgs(2),
		func(root resource.Root, args []string) (*discord.Request, error) {
			webhookID, err := parseWebhookID(args[0])
			if err != nil {
				return nil, err
			}

			req := root.Webhooks().Messages(webhookID, id.NewWebhookToken(args[1])).Post().
				Field("content", content)

			if username != "" {
				req.Field("username", username)
			}

			if wait {
				req.Query("wait", "true")
			}

			return req, nil
		})
	cmd.Flags().StringVar(&content, "content", "", "message content")
	cmd.Flags().StringVar(&username, "username", "", "override the webhook's name")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the message and print it")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}
