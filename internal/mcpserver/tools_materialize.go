package mcpserver

import (
	"context"

	"github.com/erraggy/oasexplorer/emitter"
	"github.com/erraggy/oasexplorer/example"
	"github.com/erraggy/oasexplorer/internal/options"
	"github.com/erraggy/oasexplorer/internal/workspace"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Example output formats.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

type materializeInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OAS document to explore"`
	OperationID string    `json:"operation_id,omitempty" jsonschema:"Select an operation by operationId"`
	Part        string    `json:"part,omitempty"         jsonschema:"Operation part: request or response (default response)"`
	Ref         string    `json:"ref,omitempty"          jsonschema:"Select a component schema by name or #/components/schemas/<name> pointer"`
	Format      string    `json:"format,omitempty"       jsonschema:"Output format: yaml (default) or json"`
	MaxDepth    int       `json:"max_depth,omitempty"    jsonschema:"Maximum nesting depth before a placeholder is emitted (default 6)"`
	Select      string    `json:"select,omitempty"       jsonschema:"JSONPath expression applied to the example, e.g. $.items[0].id"`
}

type materializeOutput struct {
	Target targetSummary `json:"target"`
	Format string        `json:"format"`
	Text   string        `json:"text"`
}

func handleMaterializeExample(_ context.Context, _ *mcp.CallToolRequest, input materializeInput) (*mcp.CallToolResult, any, error) {
	format := input.Format
	if format == "" {
		format = formatYAML
	}
	if err := options.ValidateOneOf("format", format, formatYAML, formatJSON); err != nil {
		return errResult(err), nil, nil
	}
	maxDepth := input.MaxDepth
	if maxDepth <= 0 {
		maxDepth = cfg.MaxDepth
	}

	ws, target, err := resolveTarget(input.Spec, workspace.Selection{
		OperationID: input.OperationID,
		Part:        input.Part,
		Ref:         input.Ref,
	})
	if err != nil {
		return errResult(err), nil, nil
	}

	value, err := example.MaterializeWithOptions(target.Node, ws.Table, example.WithMaxDepth(maxDepth))
	if err != nil {
		return errResult(err), nil, nil
	}
	if input.Select != "" {
		if value, err = workspace.Select(value, input.Select); err != nil {
			return errResult(err), nil, nil
		}
	}

	output := materializeOutput{Target: summarizeTarget(target), Format: format}
	if format == formatJSON {
		output.Text = emitter.ToJSON(value)
	} else {
		output.Text = emitter.ToYAML(value)
	}
	return nil, output, nil
}
