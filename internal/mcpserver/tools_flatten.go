package mcpserver

import (
	"context"

	"github.com/erraggy/oasexplorer/flatten"
	"github.com/erraggy/oasexplorer/internal/workspace"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type flattenInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OAS document to explore"`
	OperationID string    `json:"operation_id,omitempty" jsonschema:"Select an operation by operationId"`
	Part        string    `json:"part,omitempty"         jsonschema:"Operation part: request or response (default response)"`
	Ref         string    `json:"ref,omitempty"          jsonschema:"Select a component schema by name or #/components/schemas/<name> pointer"`
	Limit       int       `json:"limit,omitempty"        jsonschema:"Maximum number of rows to return (default 200)"`
	Offset      int       `json:"offset,omitempty"       jsonschema:"Skip the first N rows (for pagination)"`
}

type rowOutput struct {
	Depth       int      `json:"depth"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required,omitempty"`
	Nullable    bool     `json:"nullable,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	Format      string   `json:"format,omitempty"`
	Enum        string   `json:"enum,omitempty"`
	Example     string   `json:"example,omitempty"`
	Description string   `json:"description,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
	MinLength   *int     `json:"min_length,omitempty"`
	MaxLength   *int     `json:"max_length,omitempty"`
	MinItems    *int     `json:"min_items,omitempty"`
	MaxItems    *int     `json:"max_items,omitempty"`
	In          string   `json:"in,omitempty"`
	Structural  bool     `json:"structural,omitempty"`
	Ref         string   `json:"ref,omitempty"`
	Circular    bool     `json:"circular,omitempty"`
}

type flattenOutput struct {
	Target   targetSummary `json:"target"`
	Total    int           `json:"total"`
	Returned int           `json:"returned"`
	Rows     []rowOutput   `json:"rows,omitempty"`
}

func handleFlattenSchema(_ context.Context, _ *mcp.CallToolRequest, input flattenInput) (*mcp.CallToolResult, any, error) {
	ws, target, err := resolveTarget(input.Spec, workspace.Selection{
		OperationID: input.OperationID,
		Part:        input.Part,
		Ref:         input.Ref,
	})
	if err != nil {
		return errResult(err), nil, nil
	}

	rows, err := flatten.FlattenWithOptions(target.Node, ws.Table, flatten.WithRootName(target.Name))
	if err != nil {
		return errResult(err), nil, nil
	}
	returned := paginate(rows, input.Offset, input.Limit)

	output := flattenOutput{
		Target:   summarizeTarget(target),
		Total:    len(rows),
		Returned: len(returned),
		Rows:     makeSlice[rowOutput](len(returned)),
	}
	for _, r := range returned {
		output.Rows = append(output.Rows, toRowOutput(r))
	}
	return nil, output, nil
}

func toRowOutput(r flatten.Row) rowOutput {
	return rowOutput{
		Depth:       r.Depth,
		Name:        r.Name,
		Type:        r.Type,
		Required:    r.Required,
		Nullable:    r.Nullable,
		Deprecated:  r.Deprecated,
		Format:      r.Format,
		Enum:        r.Enum,
		Example:     r.Example,
		Description: r.Description,
		Pattern:     r.Pattern,
		Minimum:     r.Minimum,
		Maximum:     r.Maximum,
		MinLength:   r.MinLength,
		MaxLength:   r.MaxLength,
		MinItems:    r.MinItems,
		MaxItems:    r.MaxItems,
		In:          r.ParamLocation.String(),
		Structural:  r.Structural,
		Ref:         r.Ref,
		Circular:    r.Circular,
	}
}
