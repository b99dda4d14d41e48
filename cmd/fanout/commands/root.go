// Package commands implements the CLI commands for the fanout tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fanout/internal/app"
)

// CLI represents the command line interface for fanout.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fanout",
		Short:         "Shared-analysis metadata cache for multi-target code generation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringP("config", "c", "fanout.yaml", "Path to the groupfile")
	rootCmd.PersistentFlags().String("root", ".", "Build root directory")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newContextCmd())
	rootCmd.AddCommand(c.newGroupsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the command output streams. Used for testing.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func (c *CLI) flags(cmd *cobra.Command) (configPath, buildRoot string) {
	configPath, _ = cmd.Flags().GetString("config")
	buildRoot, _ = cmd.Flags().GetString("root")
	return configPath, buildRoot
}
