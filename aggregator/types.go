package aggregator

import "github.com/erraggy/oasexplorer/schema"

// DefaultService collects operations that declare no tags.
const DefaultService = "default"

// Service is the set of endpoints sharing a tag.
type Service struct {
	Name string
	// Description comes from the matching entry of the document's tags list
	Description string
	Endpoints   []Endpoint
}

// Endpoint is one path with its operations in method order.
type Endpoint struct {
	Path       string
	Operations []Operation
}

// Operation is a single method on a path.
type Operation struct {
	// Method is the upper-case HTTP method
	Method      string
	Path        string
	OperationID string
	Summary     string
	Tags        []string
	Deprecated  bool

	// Request combines parameters and body; nil when the operation takes neither
	Request          *schema.Node
	RequestMediaType string

	// Response is the selected response body schema, or nil
	Response          *schema.Node
	ResponseStatus    string
	ResponseMediaType string
}

// Key returns "METHOD path", for example "GET /pets".
func (o Operation) Key() string {
	return o.Method + " " + o.Path
}

// Find returns the operation with the given operationId.
func (s Service) Find(operationID string) (Operation, bool) {
	for _, e := range s.Endpoints {
		for _, op := range e.Operations {
			if op.OperationID == operationID {
				return op, true
			}
		}
	}
	return Operation{}, false
}

// FindOperation searches every service for an operationId.
func FindOperation(services []Service, operationID string) (Operation, bool) {
	for _, s := range services {
		if op, ok := s.Find(operationID); ok {
			return op, true
		}
	}
	return Operation{}, false
}

// Operations returns each distinct operation once, in service order.
func Operations(services []Service) []Operation {
	seen := make(map[string]struct{})
	var out []Operation
	for _, s := range services {
		for _, e := range s.Endpoints {
			for _, op := range e.Operations {
				if _, dup := seen[op.Key()]; dup {
					continue
				}
				seen[op.Key()] = struct{}{}
				out = append(out, op)
			}
		}
	}
	return out
}
