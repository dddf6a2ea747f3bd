package flatten

import (
	"strings"

	"github.com/erraggy/oasexplorer/emitter"
	"github.com/erraggy/oasexplorer/internal/pathutil"
	"github.com/erraggy/oasexplorer/schema"
)

// Row is one line of a flattened schema.
type Row struct {
	// Depth is the indentation level, starting at 0
	Depth int
	Name  string
	Type  string

	Required   bool
	Nullable   bool
	Deprecated bool
	Format     string
	// Enum is the allowed values joined by ", "
	Enum string
	// Example is the declared example rendered as text
	Example     string
	Description string
	Pattern     string

	Minimum   *float64
	Maximum   *float64
	MinLength *int
	MaxLength *int
	MinItems  *int
	MaxItems  *int

	ParamLocation schema.Location

	// Structural marks synthetic heading and bracket rows
	Structural bool
	// Ref is the pointer this row's schema was reached through
	Ref string
	// Circular is set when Ref was not expanded because it was already
	// expanded elsewhere in the same call
	Circular bool
}

// Names of synthetic rows.
const (
	OpenBracket           = "["
	CloseBracket          = "]"
	ItemsName             = "items"
	AdditionalPropertyRow = "additionalProperties"
)

// Type labels for rows whose schema declares no type.
const (
	TypeAny   = "any"
	TypeNever = "never"
)

// newRow describes n as a row.
func newRow(name string, n *schema.Node, depth int, required bool, loc schema.Location) Row {
	row := Row{
		Depth:         depth,
		Name:          name,
		Type:          typeLabel(n),
		Required:      required,
		ParamLocation: loc,
	}
	if n == nil || n.IsBool() {
		return row
	}

	row.Nullable = n.Nullable
	row.Deprecated = n.Deprecated
	row.Format = n.Format
	row.Enum = enumText(n.Enum)
	row.Example = exampleText(n)
	row.Description = n.Description
	row.Pattern = n.Pattern
	row.Minimum = n.Minimum
	row.Maximum = n.Maximum
	row.MinLength = n.MinLength
	row.MaxLength = n.MaxLength
	row.MinItems = n.MinItems
	row.MaxItems = n.MaxItems
	return row
}

func typeLabel(n *schema.Node) string {
	switch kind := schema.Classify(n); kind {
	case schema.KindAny:
		return TypeAny
	case schema.KindNever:
		return TypeNever
	case schema.KindRef:
		return pathutil.RefName(n.Ref)
	case schema.KindObject, schema.KindArray:
		if n.Type != "" {
			return n.Type
		}
		return kind.String()
	}
	if n != nil && n.Type != "" {
		return n.Type
	}
	return TypeAny
}

func enumText(values []any) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = valueText(v)
	}
	return strings.Join(parts, ", ")
}

func exampleText(n *schema.Node) string {
	switch {
	case n.Example != nil:
		return valueText(n.Example)
	case len(n.Examples) > 0:
		return valueText(n.Examples[0])
	}
	return ""
}

// valueText renders strings as-is and everything else as compact JSON.
func valueText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return emitter.Inline(v)
}
