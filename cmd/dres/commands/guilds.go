package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/id"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// guildCommand creates a leaf command whose first argument is a guild id.
func guildCommand(use, short string, args cobra.PositionalArgs,
	build func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error),
) *cobra.Command {
	return newLeafCommand(use, short, args, func(root resource.Root, args []string) (*discord.Request, error) {
		guildID, err := parseGuildID(args[0])
		if err != nil {
			return nil, err
		}

		return build(root.Guilds(), guildID, args[1:])
	})
}

// NewGuildsCommand creates the guilds command group.
func NewGuildsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "guilds",
		Aliases: []string{"guild", "g"},
		Short:   "Manage guilds",
		Long:    "View and manage guilds and their bans, members, roles, channels and templates",
	}

	var withCounts bool

	get := guildCommand("get GUILD_ID", "Get a guild", cobra.ExactArgs(1),
		func(guilds resource.GuildResource, guildID id.GuildID, _ []string) (*discord.Request, error) {
			req := guilds.Get(guildID)
			if withCounts {
				req.Query("with_counts", "true")
			}

			return req, nil
		})
	get.Flags().BoolVar(&withCounts, "with-counts", false, "include approximate member and presence counts")

	cmd.AddCommand(get)
	cmd.AddCommand(newLeafCommand("create NAME", "Create a guild", cobra.ExactArgs(1),
		func(root resource.Root, args []string) (*discord.Request, error) {
			return root.Guilds().Post(args[0])
		}))
	cmd.AddCommand(guildCommand("delete GUILD_ID", "Delete a guild", cobra.ExactArgs(1),
		func(guilds resource.GuildResource, guildID id.GuildID, _ []string) (*discord.Request, error) {
			return guilds.Delete(guildID), nil
		}))

	cmd.AddCommand(newGuildBansCommand())
	cmd.AddCommand(newGuildMembersCommand())
	cmd.AddCommand(newGuildRolesCommand())
	cmd.AddCommand(newGuildChannelsCommand())
	cmd.AddCommand(newGuildTemplatesCommand())
	cmd.AddCommand(newGuildPruneCommand())

	return cmd
}

func newGuildBansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bans",
		Aliases: []string{"ban"},
		Short:   "Manage guild bans",
	}

	cmd.AddCommand(guildCommand("list GUILD_ID", "List bans", cobra.ExactArgs(1),
		func(guilds resource.GuildResource, guildID id.GuildID, _ []string) (*discord.Request, error) {
			return guilds.Bans(guildID).List(), nil
		}))
	cmd.AddCommand(guildCommand("get GUILD_ID USER_ID", "Get a ban", cobra.ExactArgs(2),
		func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error) {
			userID, err := parseUserID(args[0])
			if err != nil {
				return nil, err
			}

			return guilds.Bans(guildID).Get(userID), nil
		}))

	var deleteSeconds int

	add := guildCommand("add GUILD_ID USER_ID", "Ban a user", cobra.ExactArgs(2),
		func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error) {
			userID, err := parseUserID(args[0])
			if err != nil {
				return nil, err
			}

			req := guilds.Bans(guildID).Post(userID)
			if deleteSeconds > 0 {
				req.Field("delete_message_seconds", deleteSeconds)
			}

			return req, nil
		})
	add.Flags().IntVar(&deleteSeconds, "delete-message-seconds", 0, "delete the user's messages from this many seconds back")

	cmd.AddCommand(add)
	cmd.AddCommand(newGuildBansRemoveCommand())

	return cmd
}

func newGuildBansRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove GUILD_ID USER_ID...",
		Short: "Unban users",
		Long:  "Remove the ban of each user, reporting every failure",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := CreateRoot(cmd)
			if err != nil {
				return err
			}

			guildID, err := parseGuildID(args[0])
			if err != nil {
				return err
			}

			bans := root.Guilds().Bans(guildID)

			return executeEach(cmd, args[1:], func(arg string) (*discord.Request, error) {
				userID, err := parseUserID(arg)
				if err != nil {
					return nil, err
				}

				return bans.Delete(userID), nil
			})
		},
	}
}

func newGuildMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"member"},
		Short:   "Manage guild members",
	}

	var limit int

	list := guildCommand("list GUILD_ID", "List members", cobra.ExactArgs(1),
		func(guilds resource.GuildResource, guildID id.GuildID, _ []string) (*discord.Request, error) {
			req := guilds.Members(guildID).List()
			if limit > 0 {
				req.Query("limit", strconv.Itoa(limit))
			}

			return req, nil
		})
	list.Flags().IntVar(&limit, "limit", 0, "maximum number of members (1-1000)")

	cmd.AddCommand(list)
	cmd.AddCommand(guildCommand("get GUILD_ID USER_ID", "Get a member", cobra.ExactArgs(2),
		func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error) {
			userID, err := parseUserID(args[0])
			if err != nil {
				return nil, err
			}

			return guilds.Members(guildID).Get(userID), nil
		}))
	cmd.AddCommand(guildCommand("search GUILD_ID QUERY", "Search members by name prefix", cobra.ExactArgs(2),
		func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error) {
			return guilds.Members(guildID).Search(args[0])
		}))
	cmd.AddCommand(guildCommand("nick GUILD_ID [NICKNAME]", "Change or reset your own nickname", cobra.RangeArgs(1, 2),
		func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error) {
			var nick string
			if len(args) > 0 {
				nick = args[0]
			}

			return guilds.Members(guildID).CurrentUserNickname().Patch(nick)
		}))

	return cmd
}

func newGuildRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Manage guild roles",
	}

	cmd.AddCommand(guildCommand("list GUILD_ID", "List roles", cobra.ExactArgs(1),
		func(guilds resource.GuildResource, guildID id.GuildID, _ []string) (*discord.Request, error) {
			return guilds.Roles(guildID).List(), nil
		}))

	return cmd
}

func newGuildChannelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "channels",
		Aliases: []string{"channel"},
		Short:   "Manage guild channels",
	}

	cmd.AddCommand(guildCommand("list GUILD_ID", "List channels", cobra.ExactArgs(1),
		func(guilds resource.GuildResource, guildID id.GuildID, _ []string) (*discord.Request, error) {
			return guilds.Channels(guildID).List(), nil
		}))

	var channelType int

	create := guildCommand("create GUILD_ID NAME", "Create a channel", cobra.ExactArgs(2),
		func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error) {
			req, err := guilds.Channels(guildID).Post(args[0])
			if err != nil {
				return nil, err
			}

			return req.Field("type", channelType), nil
		})
	create.Flags().IntVar(&channelType, "type", 0, "channel type (0 text, 2 voice, 4 category, 5 announcement)")

	cmd.AddCommand(create)

	return cmd
}

func newGuildTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage guild templates",
	}

	cmd.AddCommand(guildCommand("list GUILD_ID", "List templates", cobra.ExactArgs(1),
		func(guilds resource.GuildResource, guildID id.GuildID, _ []string) (*discord.Request, error) {
			return guilds.Templates(guildID).List(), nil
		}))
	cmd.AddCommand(guildCommand("create GUILD_ID NAME", "Create a template from the guild", cobra.ExactArgs(2),
		func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error) {
			return guilds.Templates(guildID).Post(args[0])
		}))
	cmd.AddCommand(guildCommand("sync GUILD_ID CODE", "Sync a template with the guild", cobra.ExactArgs(2),
		func(guilds resource.GuildResource, guildID id.GuildID, args []string) (*discord.Request, error) {
			return guilds.Templates(guildID).Put(id.NewTemplateCode(args[0])), nil
		}))

	return cmd
}

func newGuildPruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune inactive members",
	}

	var days int

	count := guildCommand("count GUILD_ID", "Count members a prune would remove", cobra.ExactArgs(1),
		func(guilds resource.GuildResource, guildID id.GuildID, _ []string) (*discord.Request, error) {
			req := guilds.Prune(guildID).Get()
			if days > 0 {
				req.Query("days", strconv.Itoa(days))
			}

			return req, nil
		})
	count.Flags().IntVar(&days, "days", 0, "days of inactivity (1-30, default 7)")

	cmd.AddCommand(count)

	return cmd
}
