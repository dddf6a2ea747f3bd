package tree

import (
	"strconv"
	"strings"

	"github.com/erraggy/oasexplorer/internal/pathutil"
	"github.com/erraggy/oasexplorer/schema"
)

// label renders "name: summary". For a resolved pointer, n is the $ref node
// and target the schema it points at.
func label(name string, n, target *schema.Node) string {
	parts := make([]string, 0, 4)

	described := n
	if n != nil && n.Ref != "" {
		parts = append(parts, "-> "+pathutil.RefName(n.Ref))
		described = target
	}

	if described != nil {
		parts = append(parts, typeName(described))
		if described.Format != "" {
			parts[len(parts)-1] += " (" + described.Format + ")"
		}
		if described.Nullable {
			parts = append(parts, "nullable")
		}
		if len(described.Enum) > 0 {
			parts = append(parts, "enum["+strconv.Itoa(len(described.Enum))+"]")
		}
	}

	return name + ": " + strings.Join(parts, ", ")
}

func typeName(n *schema.Node) string {
	if n.Type != "" {
		return n.Type
	}
	switch kind := schema.Classify(n); kind {
	case schema.KindLeaf:
		return "any"
	default:
		return kind.String()
	}
}
