// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasexplorer capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasexplorer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasexplorer MCP server: lists the operations of an OpenAPI document grouped into services, and renders any operation's request or response schema as an example document, a flat row table, or a tree.

Select a schema with operation_id (plus part=request|response, default response) or with ref (a component schema name or #/components/schemas/<name> pointer).

Configuration: defaults are configurable via OASEXPLORER_* environment variables set in your MCP client config.

Key settings:
- OASEXPLORER_MAX_DEPTH (default: 6): default nesting limit for materialize_example
- OASEXPLORER_ROW_LIMIT (default: 200): default page size for flatten_schema and list_operations
- OASEXPLORER_MAX_INLINE_SIZE (default: 10MiB): largest inline content accepted
- OASEXPLORER_CACHE_ENABLED (default: true): disable document caching entirely
- OASEXPLORER_CACHE_FILE_TTL (default: 15m): cache TTL for local file documents

Caching: loaded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change).`

// Run serves the oasexplorer tools over stdio until ctx is done or the
// client goes away.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		workspaces.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasexplorer", Version: oasexplorer.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List the operations of an OpenAPI document grouped into services (one per tag, untagged operations under \"default\"). Returns method, path, operationId, and the selected request/response media types and status. Filter by service. Use offset/limit to paginate.",
	}, handleListOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "materialize_example",
		Description: "Build an example document from an operation's request or response schema, or from a component schema. Declared examples, defaults and enums are preferred; otherwise placeholders are synthesized from types and formats. Output is YAML (default) or JSON. Use select (a JSONPath expression) to return only part of the example.",
	}, handleMaterializeExample)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "flatten_schema",
		Description: "Flatten a schema into depth-annotated rows (name, type, required, format, enum, example, constraints), expanding references and allOf. Arrays appear as bracket rows. Use offset/limit to paginate large schemas.",
	}, handleFlattenSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_tree",
		Description: "Render a schema as a labeled tree of properties, items, additionalProperties and oneOf/anyOf/allOf branches. Set resolve=true to expand $ref targets inline.",
	}, handleSchemaTree)
}

// paginate returns the page of items starting at offset. The page size is
// limit, or cfg.RowLimit when limit is not positive, capped at cfg.MaxLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 || offset >= len(items) {
		return nil
	}
	if limit <= 0 {
		limit = cfg.RowLimit
	}
	limit = min(limit, cfg.MaxLimit, len(items)-offset)
	return items[offset : offset+limit]
}

// makeSlice keeps empty outputs nil so omitempty drops them.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute paths under the usual filesystem roots.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError renders err with absolute paths replaced by <path>.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult wraps err as a tool error result.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
