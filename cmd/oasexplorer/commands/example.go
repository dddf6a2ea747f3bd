package commands

import (
	"fmt"

	"github.com/erraggy/oasexplorer/emitter"
	"github.com/erraggy/oasexplorer/example"
	"github.com/erraggy/oasexplorer/internal/workspace"
	"github.com/spf13/cobra"
)

func newExampleCmd(g *globalFlags) *cobra.Command {
	var (
		target   targetFlags
		format   string
		maxDepth int
		selector string
	)
	cmd := &cobra.Command{
		Use:   "example <spec>",
		Short: "Print an example document for a schema",
		Long: `Print an example document for an operation's request or response schema,
or for a component schema.

Declared examples, defaults, enums and consts are used where present;
otherwise placeholder values are synthesized from each schema's type and
format. Recursive schemas end in "<circular>" and nesting beyond --max-depth
ends in "<max depth>".`,
		Example: `  oasexplorer example --op listPets openapi.yaml
  oasexplorer example --op createPet --part request --format json openapi.yaml
  oasexplorer example --ref Pet --select '$.name' openapi.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateOutputFormat(format, FormatYAML, FormatJSON); err != nil {
				return err
			}
			ws, t, err := g.resolveTarget(cmd, args[0], &target)
			if err != nil {
				return fmt.Errorf("example: %w", err)
			}

			value, err := example.MaterializeWithOptions(t.Node, ws.Table, example.WithMaxDepth(maxDepth))
			if err != nil {
				return fmt.Errorf("example: %w", err)
			}
			if selector != "" {
				if value, err = workspace.Select(value, selector); err != nil {
					return fmt.Errorf("example: %w", err)
				}
			}

			if format == FormatJSON {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), emitter.ToJSON(value))
			} else {
				_, err = fmt.Fprint(cmd.OutOrStdout(), emitter.ToYAML(value))
			}
			return err
		},
	}
	target.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", FormatYAML, "output format: yaml, json")
	cmd.Flags().IntVar(&maxDepth, "max-depth", example.DefaultMaxDepth, "maximum nesting depth")
	cmd.Flags().StringVar(&selector, "select", "", "JSONPath expression applied to the example")
	return cmd
}
