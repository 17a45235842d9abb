package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// NewGatewayCommand creates the gateway command group.
func NewGatewayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Show the gateway URL",
		Long:  "Show the WebSocket gateway URL, optionally with the bot's shard information",
	}

	var bot bool

	get := newLeafCommand("get", "Get the gateway URL", cobra.NoArgs,
		unchecked(func(root resource.Root, _ []string) *discord.Request {
			if bot {
				return root.Gateway().GetBot()
			}

			return root.Gateway().Get()
		}))
	get.Flags().BoolVar(&bot, "bot", false, "include shard and session limits (requires a bot token)")

	cmd.AddCommand(get)

	return cmd
}

// NewVoiceRegionsCommand creates the voice-regions command group.
func NewVoiceRegionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voice-regions",
		Short: "List voice regions",
	}

	cmd.AddCommand(newLeafCommand("list", "List voice regions", cobra.NoArgs,
		unchecked(func(root resource.Root, _ []string) *discord.Request {
			return root.VoiceRegions().List()
		})))

	return cmd
}

// NewInvitesCommand creates the invites command group.
func NewInvitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invites",
		Aliases: []string{"invite"},
		Short:   "Manage invites",
	}

	cmd.AddCommand(newLeafCommand("get CODE", "Get an invite", cobra.ExactArgs(1),
		unchecked(func(root resource.Root, args []string) *discord.Request {
			return root.Invites().Get(id.NewInviteCode(args[0]))
		})))
	cmd.AddCommand(newLeafCommand("delete CODE", "Delete an invite", cobra.ExactArgs(1),
		unchecked(func(root resource.Root, args []string) *discord.Request {
			return root.Invites().Delete(id.NewInviteCode(args[0]))
		})))

	return cmd
}

// NewTemplatesCommand creates the templates command group.
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Look up guild templates",
	}

	cmd.AddCommand(newLeafCommand("get CODE", "Get a guild template", cobra.ExactArgs(1),
		unchecked(func(root resource.Root, args []string) *discord.Request {
			return root.Templates().Get(id.NewTemplateCode(args[0]))
		})))

	return cmd
}
