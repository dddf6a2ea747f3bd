// Package aggregator groups the operations of an OpenAPI document into
// services, endpoints and methods, and derives one request and one response
// schema per operation.
//
// # Grouping
//
// Every operation is filed under each of its tags; untagged operations go to
// the "default" service. Services follow the order of the document's
// top-level tags list, with undeclared tags sorted by name after the declared
// ones. Endpoints are sorted by path and methods by the fixed precedence GET,
// POST, PUT, PATCH, DELETE. Other methods (HEAD, OPTIONS, TRACE) are ignored.
//
// # Request schemas
//
// Path-level and operation-level parameters are merged by (in, name), the
// operation winning. Parameters are grouped by location into object schemas
// whose properties carry the location tag. With a single location the group
// is the parameter schema; with several, the parameter schema is an object
// keyed by location. The request schema is the body alone, the parameters
// alone, or an object with "params" and "body".
//
// # Response schemas
//
// The response is taken from the first of 200, 201, 202 and 204 that is
// declared, else the first 2xx, else "default", else the first status. Its
// application/json content is preferred over other media types.
//
// # Usage
//
//	services, err := aggregator.AggregateWithOptions(
//	    aggregator.WithFilePath("openapi.yaml"),
//	    aggregator.WithLogger(logger),
//	)
//	if errors.Is(err, oaserrors.ErrEmptyDocument) {
//	    // nothing to show
//	}
package aggregator
