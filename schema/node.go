package schema

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Properties maps property names to schemas in declaration order.
type Properties = orderedmap.OrderedMap[string, *Node]

// NewProperties returns an empty property map.
func NewProperties() *Properties {
	return orderedmap.New[string, *Node]()
}

// Node is a JSON Schema fragment.
//
// When Bool is non-nil the node is boolean shorthand and every other field is
// ignored. A nil Example, Default or Const means the keyword is absent.
type Node struct {
	// Bool is set for the boolean shorthand schemas true and false
	Bool *bool

	Type        string
	Title       string
	Description string
	Format      string
	Nullable    bool
	Deprecated  bool
	ReadOnly    bool
	WriteOnly   bool

	Properties           *Properties
	Required             []string
	AdditionalProperties *Node
	Items                *Node

	Enum     []any
	Example  any
	Examples []any
	Default  any
	Const    any

	Ref   string
	OneOf []*Node
	AnyOf []*Node
	AllOf []*Node

	Minimum   *float64
	Maximum   *float64
	MinLength *int
	MaxLength *int
	MinItems  *int
	MaxItems  *int
	Pattern   string

	// XMLName is the xml.name hint, used as a lookup alias
	XMLName string

	// ParamLocation records which request location a parameter schema came from.
	// It is only set on schemas synthesized from operation parameters.
	ParamLocation Location
}

// Any returns the boolean schema true.
func Any() *Node {
	b := true
	return &Node{Bool: &b}
}

// Never returns the boolean schema false.
func Never() *Node {
	b := false
	return &Node{Bool: &b}
}

// IsBool reports whether n is boolean shorthand.
func (n *Node) IsBool() bool {
	return n != nil && n.Bool != nil
}

// IsAny reports whether n is the boolean schema true.
func (n *Node) IsAny() bool {
	return n.IsBool() && *n.Bool
}

// IsNever reports whether n is the boolean schema false.
func (n *Node) IsNever() bool {
	return n.IsBool() && !*n.Bool
}

// HasProperties reports whether n declares at least one property.
func (n *Node) HasProperties() bool {
	return n != nil && n.Properties != nil && n.Properties.Len() > 0
}

// IsRequired reports whether name is listed in n.Required.
func (n *Node) IsRequired(name string) bool {
	return n != nil && slices.Contains(n.Required, name)
}

// Property returns the schema of the named property.
func (n *Node) Property(name string) (*Node, bool) {
	if n == nil || n.Properties == nil {
		return nil, false
	}
	return n.Properties.Get(name)
}

// PropertyNames returns the declared property names in order.
func (n *Node) PropertyNames() []string {
	if n == nil || n.Properties == nil {
		return nil
	}
	names := make([]string, 0, n.Properties.Len())
	for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Clone returns a copy of n that can be modified without affecting n.
// Lists and the property map are copied; child nodes are shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Bool != nil {
		b := *n.Bool
		c.Bool = &b
	}
	if n.Properties != nil {
		c.Properties = NewProperties()
		for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
			c.Properties.Set(pair.Key, pair.Value)
		}
	}
	c.Required = slices.Clone(n.Required)
	c.Enum = slices.Clone(n.Enum)
	c.Examples = slices.Clone(n.Examples)
	c.OneOf = slices.Clone(n.OneOf)
	c.AnyOf = slices.Clone(n.AnyOf)
	c.AllOf = slices.Clone(n.AllOf)
	return &c
}

// WithLocation returns n tagged with loc. The node is returned unchanged when
// loc is empty, when n is boolean shorthand, or when n already carries a tag.
func WithLocation(n *Node, loc Location) *Node {
	if n == nil || loc == LocationNone || n.IsBool() || n.ParamLocation != LocationNone {
		return n
	}
	c := n.Clone()
	c.ParamLocation = loc
	return c
}
