// Package oaserrors provides structured error types for the oasexplorer module.
//
// Import path: github.com/erraggy/oasexplorer/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the few conditions that surface as
// errors. The schema pipeline itself never fails: missing or malformed schema
// data degrades to neutral defaults. Errors only come from loading a document,
// from an aggregation that finds nothing to show, from strict reference
// lookups, and from invalid options.
//
// # Error Types
//
//   - [ParseError]: the document could not be read or decoded
//   - [ReferenceError]: a strict $ref lookup failed
//   - [EmptyDocumentError]: the document has no paths or no operations
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrEmptyDocument]: Matches any [EmptyDocumentError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	services, err := aggregator.Aggregate(doc)
//	if errors.Is(err, oaserrors.ErrEmptyDocument) {
//	    // Nothing to show; report it to the user
//	}
//
// Extract error details with errors.As():
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("%s line %d: %s\n", parseErr.Path, parseErr.Line, parseErr.Message)
//	}
package oaserrors
