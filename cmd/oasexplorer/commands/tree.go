package commands

import (
	"fmt"

	"github.com/erraggy/oasexplorer/tree"
	"github.com/spf13/cobra"
)

func newTreeCmd(g *globalFlags) *cobra.Command {
	var (
		target  targetFlags
		resolve bool
	)
	cmd := &cobra.Command{
		Use:   "tree <spec>",
		Short: "Print a schema as a tree",
		Long: `Print a schema as a tree of properties, items, additionalProperties and
oneOf/anyOf/allOf branches. References are shown as "-> Name" leaves unless
--resolve is given, in which case they are expanded in place.`,
		Example: `  oasexplorer tree --ref Pet openapi.yaml
  oasexplorer tree --op listPets --resolve openapi.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, t, err := g.resolveTarget(cmd, args[0], &target)
			if err != nil {
				return fmt.Errorf("tree: %w", err)
			}
			var opts []tree.Option
			if resolve {
				opts = append(opts, tree.WithResolver(ws.Table))
			}
			nodes, err := tree.BuildWithOptions(t.Node, t.Name, opts...)
			if err != nil {
				return fmt.Errorf("tree: %w", err)
			}
			return tree.Render(cmd.OutOrStdout(), nodes)
		},
	}
	target.register(cmd)
	cmd.Flags().BoolVar(&resolve, "resolve", false, "expand $ref targets in place")
	return cmd
}
