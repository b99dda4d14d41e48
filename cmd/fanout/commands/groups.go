package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Inspect the source-group hierarchy",
	}

	closure := &cobra.Command{
		Use:   "closure <group>",
		Short: "Print the ancestor closure of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := c.flags(cmd)

			hierarchy, err := c.app.Hierarchy(configPath, args[0])
			if err != nil {
				return err
			}

			names := make([]string, 0, len(hierarchy))
			for name := range hierarchy {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				if parents := hierarchy[name]; len(parents) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, strings.Join(parents, ", "))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
			return nil
		},
	}

	attribute := &cobra.Command{
		Use:   "attribute <path>",
		Short: "Resolve the source group owning a file path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testRole, _ := cmd.Flags().GetBool("test")

			group, err := c.app.Attribute(args[0], testRole)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), group)
			return nil
		},
	}
	attribute.Flags().Bool("test", false, "Rewrite the group to its test-role counterpart")

	cmd.AddCommand(closure, attribute)
	return cmd
}
