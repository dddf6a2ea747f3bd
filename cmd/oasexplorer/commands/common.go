// Package commands provides the CLI command tree for oasexplorer.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/workspace"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the document path that reads from stdin.
const StdinFilePath = document.StdinFilePath

// ValidateOutputFormat validates an output format against the allowed set.
func ValidateOutputFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s", format, strings.Join(allowed, ", "))
}

// RenderStructured writes data as indented JSON or as YAML.
func RenderStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndentWithOption(data, "", "  ", json.DisableHTMLEscape())
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(out), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose bool
}

// logger returns a debug-level slog logger on stderr in verbose mode and a
// no-op logger otherwise.
func (g *globalFlags) logger(cmd *cobra.Command) document.Logger {
	if !g.verbose {
		return document.NopLogger{}
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	return document.NewSlogAdapter(slog.New(h))
}

// loadWorkspace parses specPath, reading stdin for "-".
func (g *globalFlags) loadWorkspace(cmd *cobra.Command, specPath string) (*workspace.Workspace, error) {
	var opt document.Option
	if specPath == StdinFilePath {
		opt = document.WithReader(cmd.InOrStdin())
	} else {
		opt = document.WithFilePath(specPath)
	}
	return workspace.Load(g.logger(cmd), opt)
}

// targetFlags select the schema a command renders.
type targetFlags struct {
	operationID string
	part        string
	ref         string
}

func (t *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.operationID, "op", "", "select an operation by operationId")
	cmd.Flags().StringVar(&t.part, "part", workspace.PartResponse, "operation part: request or response")
	cmd.Flags().StringVar(&t.ref, "ref", "", "select a component schema by name or #/components/schemas/<name> pointer")
	cmd.MarkFlagsMutuallyExclusive("op", "ref")
	cmd.MarkFlagsOneRequired("op", "ref")
}

func (t *targetFlags) selection() workspace.Selection {
	return workspace.Selection{OperationID: t.operationID, Part: t.part, Ref: t.ref}
}

// resolveTarget loads specPath and selects the target schema.
func (g *globalFlags) resolveTarget(cmd *cobra.Command, specPath string, t *targetFlags) (*workspace.Workspace, workspace.Target, error) {
	ws, err := g.loadWorkspace(cmd, specPath)
	if err != nil {
		return nil, workspace.Target{}, err
	}
	target, err := ws.Target(t.selection())
	if err != nil {
		return nil, workspace.Target{}, err
	}
	return ws, target, nil
}
