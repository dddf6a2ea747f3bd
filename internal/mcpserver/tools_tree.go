package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/oasexplorer/internal/workspace"
	"github.com/erraggy/oasexplorer/tree"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type schemaTreeInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OAS document to explore"`
	OperationID string    `json:"operation_id,omitempty" jsonschema:"Select an operation by operationId"`
	Part        string    `json:"part,omitempty"         jsonschema:"Operation part: request or response (default response)"`
	Ref         string    `json:"ref,omitempty"          jsonschema:"Select a component schema by name or #/components/schemas/<name> pointer"`
	Resolve     bool      `json:"resolve,omitempty"      jsonschema:"Expand $ref targets inline"`
}

type treeNodeOutput struct {
	Label    string           `json:"label"`
	Key      string           `json:"key"`
	Children []treeNodeOutput `json:"children,omitempty"`
}

type schemaTreeOutput struct {
	Target targetSummary    `json:"target"`
	Text   string           `json:"text"`
	Nodes  []treeNodeOutput `json:"nodes"`
}

func handleSchemaTree(_ context.Context, _ *mcp.CallToolRequest, input schemaTreeInput) (*mcp.CallToolResult, any, error) {
	ws, target, err := resolveTarget(input.Spec, workspace.Selection{
		OperationID: input.OperationID,
		Part:        input.Part,
		Ref:         input.Ref,
	})
	if err != nil {
		return errResult(err), nil, nil
	}

	var opts []tree.Option
	if input.Resolve {
		opts = append(opts, tree.WithResolver(ws.Table))
	}
	nodes, err := tree.BuildWithOptions(target.Node, target.Name, opts...)
	if err != nil {
		return errResult(err), nil, nil
	}

	var b strings.Builder
	if err := tree.Render(&b, nodes); err != nil {
		return errResult(err), nil, nil
	}
	return nil, schemaTreeOutput{
		Target: summarizeTarget(target),
		Text:   b.String(),
		Nodes:  toTreeOutput(nodes),
	}, nil
}

func toTreeOutput(nodes []tree.Node) []treeNodeOutput {
	out := make([]treeNodeOutput, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, treeNodeOutput{
			Label:    n.Label,
			Key:      n.Key,
			Children: toTreeOutput(n.Children),
		})
	}
	return out
}
