package mcpserver

import (
	"github.com/erraggy/oasexplorer/internal/workspace"
)

// targetSummary describes the selected schema in tool output.
type targetSummary struct {
	Name        string `json:"name"`
	OperationID string `json:"operation_id,omitempty"`
	Method      string `json:"method,omitempty"`
	Path        string `json:"path,omitempty"`
	Part        string `json:"part,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	Status      string `json:"status,omitempty"`
}

// resolveTarget loads the document and selects the schema.
func resolveTarget(spec specInput, sel workspace.Selection) (*workspace.Workspace, workspace.Target, error) {
	ws, err := spec.resolve()
	if err != nil {
		return nil, workspace.Target{}, err
	}
	target, err := ws.Target(sel)
	if err != nil {
		return nil, workspace.Target{}, err
	}
	return ws, target, nil
}

func summarizeTarget(t workspace.Target) targetSummary {
	s := targetSummary{Name: t.Name, Part: t.Part}
	if op := t.Operation; op != nil {
		s.OperationID = op.OperationID
		s.Method = op.Method
		s.Path = op.Path
		if t.Part == workspace.PartRequest {
			s.MediaType = op.RequestMediaType
		} else {
			s.MediaType = op.ResponseMediaType
			s.Status = op.ResponseStatus
		}
	}
	return s
}
