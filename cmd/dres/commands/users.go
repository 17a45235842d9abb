package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Look up users and the current user",
	}

	cmd.AddCommand(newLeafCommand("get USER_ID", "Get a user", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			userID, err := parseUserID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Users().Get(userID), nil
		}))
	cmd.AddCommand(newLeafCommand("me", "Get the current user", cobra.NoArgs,
		unchecked(func(root resource.Root, _ []string) *discord.Request {
			return root.Users().Me().Get()
		})))
	cmd.AddCommand(newLeafCommand("guilds", "List the current user's guilds", cobra.NoArgs,
		unchecked(func(root resource.Root, _ []string) *discord.Request {
			return root.Users().Me().Guilds().List()
		})))
	cmd.AddCommand(newLeafCommand("leave GUILD_ID", "Leave a guild", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			guildID, err := parseGuildID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Users().Me().Guilds().Delete(guildID), nil
		}))
	cmd.AddCommand(newLeafCommand("dm USER_ID", "Open a DM channel with a user", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			userID, err := parseUserID(args[0])
			if err != nil {
				return nil, err
			}

			return root.Users().PrivateChannel(userID).Post(), nil
		}))

	return cmd
}
