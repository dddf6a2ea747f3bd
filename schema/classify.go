package schema

import "github.com/erraggy/oasexplorer/internal/schemautil"

// Kind is the structural classification of a node.
type Kind int

const (
	// KindLeaf is a scalar, or a node carrying no structural information.
	KindLeaf Kind = iota
	// KindAny is the boolean schema true.
	KindAny
	// KindNever is the boolean schema false.
	KindNever
	// KindObject is a node with object type, properties or additionalProperties.
	KindObject
	// KindArray is a node with array type or items.
	KindArray
	// KindComposition is a node whose only structure is oneOf, anyOf or allOf.
	KindComposition
	// KindRef is a $ref that was left unresolved.
	KindRef
)

var kindNames = [...]string{
	KindLeaf:        "leaf",
	KindAny:         "any",
	KindNever:       "never",
	KindObject:      "object",
	KindArray:       "array",
	KindComposition: "composition",
	KindRef:         "ref",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Classify returns the kind of n. A declared type takes precedence over
// keyword presence, so {type: array, properties: ...} is an array.
func Classify(n *Node) Kind {
	switch {
	case n == nil:
		return KindLeaf
	case n.IsAny():
		return KindAny
	case n.IsNever():
		return KindNever
	case n.Ref != "":
		return KindRef
	case n.Type == schemautil.TypeObject:
		return KindObject
	case n.Type == schemautil.TypeArray:
		return KindArray
	case n.Properties != nil || n.AdditionalProperties != nil:
		return KindObject
	case n.Items != nil:
		return KindArray
	case len(n.AllOf) > 0 || len(n.OneOf) > 0 || len(n.AnyOf) > 0:
		return KindComposition
	}
	return KindLeaf
}

// IsStructural reports whether k has children to descend into.
func (k Kind) IsStructural() bool {
	return k == KindObject || k == KindArray || k == KindComposition
}
