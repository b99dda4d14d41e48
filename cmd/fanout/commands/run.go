package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/fanout/internal/adapters/declfile"
	"go.trai.ch/fanout/internal/adapters/memstore"
	"go.trai.ch/fanout/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one compilation pass through the metadata cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, buildRoot := c.flags(cmd)
			passName, _ := cmd.Flags().GetString("pass")
			role, _ := cmd.Flags().GetString("role")
			artifactPath, _ := cmd.Flags().GetString("artifact")
			declsPath, _ := cmd.Flags().GetString("declarations")

			store := memstore.New()
			result, err := c.app.RunPass(cmd.Context(), app.RunPassOptions{
				ConfigPath:   configPath,
				PassName:     passName,
				BuildRoot:    buildRoot,
				Role:         role,
				ArtifactPath: artifactPath,
				Analyzer:     declfile.NewLoader(declsPath),
			}, store)
			if err != nil {
				return err
			}

			source := "analysis"
			if result.FromCache {
				source = "cache"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pass %s: %d units from %s\n",
				result.Context.CompilationName, store.Len(), source)
			for _, unit := range store.Units() {
				if group, ok := result.Routed[unit.Identifier]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s\n", unit.Identifier, group)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("pass", "", "Name of the compilation pass")
	cmd.Flags().String("role", "standalone", "Cache role: producer, consumer or standalone")
	cmd.Flags().String("artifact", "", "Cache artifact location")
	cmd.Flags().String("declarations", "", "JSON file with the pass's analyzed declarations")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}
