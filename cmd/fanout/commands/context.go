package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Encode and decode compilation contexts",
	}

	encode := &cobra.Command{
		Use:   "encode",
		Short: "Build and encode the context for one pass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, buildRoot := c.flags(cmd)
			passName, _ := cmd.Flags().GetString("pass")

			encoded, err := c.app.EncodeContext(configPath, passName, buildRoot)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
	encode.Flags().String("pass", "", "Name of the compilation pass")
	_ = encode.MarkFlagRequired("pass")

	decode := &cobra.Command{
		Use:   "decode <payload>",
		Short: "Decode a transported context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := c.app.DecodeContext(args[0])
			data, err := json.MarshalIndent(cc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}
