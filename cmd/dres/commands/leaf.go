package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/discord-resource/pkg/discord"
	"github.com/fivetwenty-io/discord-resource/pkg/resource"
)

// buildFunc builds the request a command executes.
type buildFunc func(root resource.Root, args []string) (*discord.Request, error)

// unchecked adapts a leaf operation that cannot fail.
func unchecked(build func(root resource.Root, args []string) *discord.Request) buildFunc {
	return func(root resource.Root, args []string) (*discord.Request, error) {
		return build(root, args), nil
	}
}

// newLeafCommand creates a command that walks the resource tree to a single
// leaf operation and executes it.
func newLeafCommand(use, short string, args cobra.PositionalArgs, build buildFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := CreateRoot(cmd)
			if err != nil {
				return err
			}

			req, err := build(root, args)

			return execute(cmd, req, err)
		},
	}
}
