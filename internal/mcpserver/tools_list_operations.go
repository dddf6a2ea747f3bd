package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oasexplorer/aggregator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listOperationsInput struct {
	Spec    specInput `json:"spec"              jsonschema:"The OAS document to explore"`
	Service string    `json:"service,omitempty" jsonschema:"Only list operations of this service (tag name, or default)"`
	Limit   int       `json:"limit,omitempty"   jsonschema:"Maximum number of operations to return (default 200)"`
	Offset  int       `json:"offset,omitempty"  jsonschema:"Skip the first N operations (for pagination)"`
}

type operationSummary struct {
	Service           string   `json:"service"`
	Method            string   `json:"method"`
	Path              string   `json:"path"`
	OperationID       string   `json:"operation_id,omitempty"`
	Summary           string   `json:"summary,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Deprecated        bool     `json:"deprecated,omitempty"`
	HasRequest        bool     `json:"has_request"`
	RequestMediaType  string   `json:"request_media_type,omitempty"`
	HasResponse       bool     `json:"has_response"`
	ResponseStatus    string   `json:"response_status,omitempty"`
	ResponseMediaType string   `json:"response_media_type,omitempty"`
}

type serviceSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Operations  int    `json:"operations"`
}

type listOperationsOutput struct {
	Title      string             `json:"title,omitempty"`
	Version    string             `json:"version,omitempty"`
	Services   []serviceSummary   `json:"services"`
	Total      int                `json:"total"`
	Returned   int                `json:"returned"`
	Operations []operationSummary `json:"operations,omitempty"`
}

func handleListOperations(_ context.Context, _ *mcp.CallToolRequest, input listOperationsInput) (*mcp.CallToolResult, any, error) {
	ws, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}
	if ws.ServicesErr != nil {
		return errResult(ws.ServicesErr), nil, nil
	}

	output := listOperationsOutput{
		Title:    ws.Doc.Title(),
		Version:  ws.Doc.Version(),
		Services: makeSlice[serviceSummary](len(ws.Services)),
	}

	var all []operationSummary
	found := input.Service == ""
	for _, svc := range ws.Services {
		ops := aggregator.Operations([]aggregator.Service{svc})
		output.Services = append(output.Services, serviceSummary{
			Name:        svc.Name,
			Description: svc.Description,
			Operations:  len(ops),
		})
		if input.Service != "" && svc.Name != input.Service {
			continue
		}
		found = true
		for _, op := range ops {
			all = append(all, summarizeOperation(svc.Name, op))
		}
	}
	if !found {
		return errResult(fmt.Errorf("service %q not found", input.Service)), nil, nil
	}

	returned := paginate(all, input.Offset, input.Limit)
	output.Total = len(all)
	output.Returned = len(returned)
	output.Operations = returned
	return nil, output, nil
}

func summarizeOperation(service string, op aggregator.Operation) operationSummary {
	return operationSummary{
		Service:           service,
		Method:            op.Method,
		Path:              op.Path,
		OperationID:       op.OperationID,
		Summary:           op.Summary,
		Tags:              op.Tags,
		Deprecated:        op.Deprecated,
		HasRequest:        op.Request != nil,
		RequestMediaType:  op.RequestMediaType,
		HasResponse:       op.Response != nil,
		ResponseStatus:    op.ResponseStatus,
		ResponseMediaType: op.ResponseMediaType,
	}
}
