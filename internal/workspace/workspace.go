// Package workspace bundles a parsed document with its schema table and
// aggregated services, and selects the schema a command or tool operates on.
package workspace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/oasexplorer/aggregator"
	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/options"
	"github.com/erraggy/oasexplorer/internal/pathutil"
	"github.com/erraggy/oasexplorer/schema"
)

// Message parts of an operation.
const (
	PartRequest  = "request"
	PartResponse = "response"
)

// Workspace is a loaded document ready for exploration.
type Workspace struct {
	Doc   *document.Document
	Table *schema.Table

	// Services is empty when aggregation failed; ServicesErr holds why.
	Services    []aggregator.Service
	ServicesErr error
}

// Load parses a document and prepares its table and services.
// Aggregation failures do not fail the load so that component schemas stay
// reachable through Target.
func Load(logger document.Logger, opts ...document.Option) (*Workspace, error) {
	logger = document.OrNop(logger)
	opts = append(opts, document.WithLogger(logger))
	doc, err := document.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	return New(doc, logger), nil
}

// New prepares a workspace from an already parsed document.
func New(doc *document.Document, logger document.Logger) *Workspace {
	w := &Workspace{Doc: doc, Table: schema.TableFromDocument(doc)}
	w.Services, w.ServicesErr = aggregator.AggregateWithOptions(
		aggregator.WithDocument(doc),
		aggregator.WithLogger(document.OrNop(logger)),
	)
	return w
}

// Target is the schema chosen for materialization, flattening or tree building.
type Target struct {
	// Name labels the root row or tree node
	Name string
	Node *schema.Node
	// Operation is set when the target was selected by operation id
	Operation *aggregator.Operation
	Part      string
}

// Selection identifies a Target. Exactly one of OperationID and Ref is set.
type Selection struct {
	OperationID string
	Part        string
	Ref         string
}

// Target resolves sel against the workspace.
func (w *Workspace) Target(sel Selection) (Target, error) {
	if err := options.ValidateSingleInputSource(
		"must specify an operation id or a schema ref",
		"must specify only one of an operation id or a schema ref",
		sel.OperationID != "", sel.Ref != "",
	); err != nil {
		return Target{}, err
	}
	if sel.Ref != "" {
		return w.refTarget(sel.Ref)
	}
	return w.operationTarget(sel.OperationID, sel.Part)
}

func (w *Workspace) refTarget(ref string) (Target, error) {
	if !strings.HasPrefix(ref, "#/") {
		ref = pathutil.SchemaRef(ref)
	}
	n, err := w.Table.LookupRef(ref)
	if err != nil {
		return Target{}, err
	}
	return Target{Name: pathutil.RefName(ref), Node: n}, nil
}

func (w *Workspace) operationTarget(id, part string) (Target, error) {
	if part == "" {
		part = PartResponse
	}
	if err := options.ValidateOneOf("part", part, PartRequest, PartResponse); err != nil {
		return Target{}, err
	}
	if w.ServicesErr != nil {
		return Target{}, fmt.Errorf("workspace: %w", w.ServicesErr)
	}
	op, ok := aggregator.FindOperation(w.Services, id)
	if !ok {
		return Target{}, fmt.Errorf("workspace: %w", &UnknownOperationError{OperationID: id})
	}
	t := Target{Name: part, Operation: &op, Part: part, Node: op.Response}
	if part == PartRequest {
		t.Node = op.Request
	}
	if t.Node == nil {
		return Target{}, fmt.Errorf("workspace: operation %s has no %s schema", id, part)
	}
	return t, nil
}

// UnknownOperationError reports an operation id absent from every service.
type UnknownOperationError struct {
	OperationID string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("operation %q not found", e.OperationID)
}

// IsUnknownOperation reports whether err wraps an UnknownOperationError.
func IsUnknownOperation(err error) bool {
	var target *UnknownOperationError
	return errors.As(err, &target)
}
