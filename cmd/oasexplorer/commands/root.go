package commands

import (
	"fmt"

	"github.com/erraggy/oasexplorer"
	"github.com/erraggy/oasexplorer/internal/mcpserver"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the oasexplorer command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "oasexplorer",
		Short: "Explore the operations and schemas of an OpenAPI document",
		Long: `oasexplorer groups the operations of an OpenAPI document into services and
renders any operation's request or response schema as an example document,
a flat table of fields, or a tree.

Pass "-" as the document path to read from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newServicesCmd(g),
		newExampleCmd(g),
		newRowsCmd(g),
		newTreeCmd(g),
		newMCPCmd(),
		newVersionCmd(),
	)
	return root
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Run a Model Context Protocol server over stdio exposing the list_operations,
materialize_example, flatten_schema and schema_tree tools. Defaults are read
from OASEXPLORER_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}

func newVersionCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if long {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), oasexplorer.BuildInfo())
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "oasexplorer v%s\n", oasexplorer.Version())
			return err
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "include commit, build time and Go version")
	return cmd
}
