// Package document loads OpenAPI documents for the schema pipeline.
//
// A document is decoded from YAML or JSON into ordered generic values:
// mappings become [*Object] (insertion-ordered), sequences become []any and
// scalars become string, int, float64, bool or nil. Key order matters
// downstream because schema properties are displayed and flattened in
// declaration order.
//
// # Loading
//
//	doc, err := document.ParseWithOptions(
//	    document.WithFilePath("openapi.yaml"),
//	    document.WithLogger(document.NewSlogAdapter(slog.Default())),
//	)
//	if err != nil {
//	    var parseErr *oaserrors.ParseError
//	    if errors.As(err, &parseErr) { ... }
//	}
//
// Loading is the only I/O in the module. It reads the whole document or
// fails before any pipeline stage runs. No $ref is resolved here; the schema
// package resolves component schemas lazily against [Document.Schemas].
package document
