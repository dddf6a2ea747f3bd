package aggregator

import (
	"cmp"
	"math"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/httputil"
	"github.com/erraggy/oasexplorer/oaserrors"
)

// Path item keys that are not operations.
var pathItemFields = map[string]struct{}{
	"$ref": {}, "summary": {}, "description": {}, "servers": {}, "parameters": {},
}

type aggregator struct {
	doc    *document.Document
	logger document.Logger
}

// run builds the service list.
func (a *aggregator) run() ([]Service, error) {
	paths := a.doc.Paths()
	if document.Len(paths) == 0 {
		return nil, &oaserrors.EmptyDocumentError{
			Source:  a.doc.SourcePath,
			Message: "document declares no paths",
		}
	}

	// service name -> path -> operations
	grouped := make(map[string]map[string][]Operation)
	count := 0

	for pair := paths.Oldest(); pair != nil; pair = pair.Next() {
		path := pair.Key
		item, ok := document.AsObject(pair.Value)
		if !ok {
			a.logger.Debug("skipped path item", "path", path, "reason", "not a mapping")
			continue
		}
		if ref := document.GetString(item, "$ref"); ref != "" {
			a.logger.Debug("skipped path item", "path", path, "reason", "path item references are not followed", "ref", ref)
			continue
		}

		shared := a.parameters(document.GetSlice(item, "parameters"))

		for entry := item.Oldest(); entry != nil; entry = entry.Next() {
			method := entry.Key
			if _, field := pathItemFields[method]; field || strings.HasPrefix(method, "x-") {
				continue
			}
			if !httputil.IsSupportedMethod(method) {
				a.logger.Debug("skipped operation", "path", path, "method", method)
				continue
			}
			raw, ok := document.AsObject(entry.Value)
			if !ok {
				a.logger.Debug("skipped operation", "path", path, "method", method, "reason", "not a mapping")
				continue
			}

			op := a.operation(path, method, raw, shared)
			count++
			for _, tag := range serviceNames(op.Tags) {
				if grouped[tag] == nil {
					grouped[tag] = make(map[string][]Operation)
				}
				grouped[tag][path] = append(grouped[tag][path], op)
			}
		}
	}

	if count == 0 {
		return nil, &oaserrors.EmptyDocumentError{
			Source:    a.doc.SourcePath,
			PathCount: paths.Len(),
			Message:   "no operations found",
		}
	}

	services := a.services(grouped)
	a.logger.Info("aggregated operations", "operations", count, "services", len(services))
	return services, nil
}

// serviceNames returns the distinct tags of an operation, or the default
// service for an untagged one.
func serviceNames(tags []string) []string {
	if len(tags) == 0 {
		return []string{DefaultService}
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen.Add(t) {
			out = append(out, t)
		}
	}
	return out
}

func (a *aggregator) operation(path, method string, raw *document.Object, shared []parameter) Operation {
	op := Operation{
		Method:      strings.ToUpper(method),
		Path:        path,
		OperationID: document.GetString(raw, "operationId"),
		Summary:     document.GetString(raw, "summary"),
		Deprecated:  document.GetBool(raw, "deprecated"),
	}
	for _, t := range document.GetSlice(raw, "tags") {
		if s, ok := t.(string); ok && s != "" {
			op.Tags = append(op.Tags, s)
		}
	}

	params := mergeParameters(shared, a.parameters(document.GetSlice(raw, "parameters")))
	op.Request, op.RequestMediaType = a.request(params, raw)
	op.ResponseStatus, op.Response, op.ResponseMediaType = a.response(document.GetObject(raw, "responses"))

	a.logger.Debug("collected operation",
		"operation", op.Key(),
		"operationId", op.OperationID,
		"parameters", len(params),
		"responseStatus", op.ResponseStatus,
	)
	return op
}

// services orders the grouped operations.
func (a *aggregator) services(grouped map[string]map[string][]Operation) []Service {
	declared := make(map[string]int)
	descriptions := make(map[string]string)
	for i, tag := range a.doc.Tags() {
		if _, dup := declared[tag.Name]; !dup {
			declared[tag.Name] = i
			descriptions[tag.Name] = tag.Description
		}
	}
	rank := func(name string) int {
		if i, ok := declared[name]; ok {
			return i
		}
		return math.MaxInt
	}

	services := make([]Service, 0, len(grouped))
	for name, byPath := range grouped {
		svc := Service{Name: name, Description: descriptions[name]}
		for path, ops := range byPath {
			slices.SortStableFunc(ops, func(x, y Operation) int {
				return cmp.Compare(httputil.MethodRank(x.Method), httputil.MethodRank(y.Method))
			})
			svc.Endpoints = append(svc.Endpoints, Endpoint{Path: path, Operations: ops})
		}
		slices.SortFunc(svc.Endpoints, func(x, y Endpoint) int {
			return strings.Compare(x.Path, y.Path)
		})
		services = append(services, svc)
	}

	slices.SortFunc(services, func(x, y Service) int {
		if c := cmp.Compare(rank(x.Name), rank(y.Name)); c != 0 {
			return c
		}
		return strings.Compare(x.Name, y.Name)
	})
	return services
}

// component follows $ref entries of v through the components section until
// a value without $ref is reached. Cycles and dangling pointers yield nil.
func (a *aggregator) component(v any) *document.Object {
	seen := mapset.NewThreadUnsafeSet[string]()
	for {
		obj, ok := document.AsObject(v)
		if !ok {
			return nil
		}
		ref := document.GetString(obj, "$ref")
		if ref == "" {
			return obj
		}
		if !seen.Add(ref) {
			a.logger.Debug("circular component reference", "ref", ref)
			return nil
		}
		target, ok := a.doc.Component(ref)
		if !ok {
			a.logger.Debug("unresolved component reference", "ref", ref)
			return nil
		}
		v = target
	}
}
