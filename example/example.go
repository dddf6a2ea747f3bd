// Package example synthesizes one concrete example value from a schema.
//
// Materialization is deterministic: the same schema always yields the same
// value. Explicit example, examples, default, enum and const keywords are
// preferred; otherwise a value is built from the schema's structure and
// declared type. Objects are returned as *document.Object so that property
// order survives serialization.
//
//	v := example.Materialize(node, table)
//	fmt.Print(emitter.ToYAML(v))
//
// Cycles and excessive nesting never fail; they produce the placeholder
// strings [Circular] and [MaxDepth] at the point where expansion stopped.
package example

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/options"
	"github.com/erraggy/oasexplorer/internal/schemautil"
	"github.com/erraggy/oasexplorer/schema"
)

// DefaultMaxDepth is the nesting depth at which materialization stops.
const DefaultMaxDepth = 6

// Placeholder strings returned in place of a real value.
const (
	// AnyValue stands for the schema true
	AnyValue = "<any>"
	// Never stands for the schema false
	Never = "<never>"
	// Circular marks a $ref that is already being expanded
	Circular = "<circular>"
	// MaxDepth marks where nesting exceeded the depth limit
	MaxDepth = "<max depth>"
)

// AdditionalPropertyKey names the entry synthesized for additionalProperties.
const AdditionalPropertyKey = "additionalProp1"

// Option configures materialization.
type Option func(*config) error

type config struct {
	maxDepth int
}

// WithMaxDepth sets the nesting depth at which MaxDepth is returned.
// Default: DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		if err := options.ValidatePositive("max-depth", depth); err != nil {
			return err
		}
		cfg.maxDepth = depth
		return nil
	}
}

// Materialize returns an example value for n using the default options.
// A nil node yields the generic "value" literal.
func Materialize(n *schema.Node, r schema.Resolver) any {
	m := &materializer{resolver: r, maxDepth: DefaultMaxDepth, inFlight: mapset.NewThreadUnsafeSet[string]()}
	return m.value(n, 0)
}

// MaterializeWithOptions is Materialize with explicit options.
func MaterializeWithOptions(n *schema.Node, r schema.Resolver, opts ...Option) (any, error) {
	cfg := &config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("example: invalid options: %w", err)
		}
	}
	m := &materializer{resolver: r, maxDepth: cfg.maxDepth, inFlight: mapset.NewThreadUnsafeSet[string]()}
	return m.value(n, 0), nil
}

type materializer struct {
	resolver schema.Resolver
	maxDepth int
	// inFlight holds the pointers being expanded on the current path
	inFlight mapset.Set[string]
}

func (m *materializer) value(n *schema.Node, depth int) any {
	if depth > m.maxDepth {
		return MaxDepth
	}
	if n == nil {
		return "value"
	}
	if n.IsBool() {
		if n.IsAny() {
			return AnyValue
		}
		return Never
	}

	if n.Ref != "" {
		return m.ref(n.Ref, depth)
	}

	if v, ok := direct(n); ok {
		return v
	}

	if len(n.AllOf) > 0 {
		if merged := schema.MergeAllOf(n, m.resolver); schema.Classify(merged) == schema.KindObject {
			return m.object(merged, depth)
		}
	}

	switch schema.Classify(n) {
	case schema.KindObject:
		return m.object(n, depth)
	case schema.KindArray:
		return m.array(n, depth)
	}

	switch {
	case len(n.AllOf) > 0:
		return m.value(n.AllOf[0], depth+1)
	case len(n.OneOf) > 0:
		return m.value(n.OneOf[0], depth+1)
	case len(n.AnyOf) > 0:
		return m.value(n.AnyOf[0], depth+1)
	}

	return leaf(n)
}

func (m *materializer) ref(ref string, depth int) any {
	if m.inFlight.Contains(ref) {
		return Circular
	}
	if m.resolver == nil {
		return ref
	}
	target, ok := m.resolver.Resolve(ref)
	if !ok {
		return ref
	}
	m.inFlight.Add(ref)
	defer m.inFlight.Remove(ref)
	return m.value(target, depth+1)
}

// direct returns the first explicit example source present on n.
func direct(n *schema.Node) (any, bool) {
	switch {
	case n.Example != nil:
		return n.Example, true
	case len(n.Examples) > 0:
		return n.Examples[0], true
	case n.Default != nil:
		return n.Default, true
	case len(n.Enum) > 0:
		return n.Enum[0], true
	case n.Const != nil:
		return n.Const, true
	}
	return nil, false
}

func (m *materializer) object(n *schema.Node, depth int) any {
	obj := document.NewObject()

	if !n.HasProperties() {
		if ap := n.AdditionalProperties; ap != nil {
			obj.Set(AdditionalPropertyKey, m.value(ap, depth+1))
		}
		return obj
	}

	var required, optional []string
	for _, name := range n.PropertyNames() {
		if n.IsRequired(name) {
			required = append(required, name)
		} else {
			optional = append(optional, name)
		}
	}
	slices.Sort(required)
	slices.Sort(optional)

	for _, name := range append(required, optional...) {
		prop, _ := n.Property(name)
		obj.Set(name, m.value(prop, depth+1))
	}
	return obj
}

func (m *materializer) array(n *schema.Node, depth int) any {
	if n.Items.IsNever() {
		return []any{}
	}
	items := n.Items
	if items == nil {
		items = &schema.Node{Type: schemautil.TypeString}
	}
	return []any{m.value(items, depth+1)}
}

// leaf returns the canned value for a scalar type.
func leaf(n *schema.Node) any {
	switch n.Type {
	case schemautil.TypeString:
		if v, ok := formatExamples[n.Format]; ok {
			return v
		}
		return "string"
	case schemautil.TypeInteger, schemautil.TypeNumber:
		return 0
	case schemautil.TypeBoolean:
		return false
	case schemautil.TypeNull:
		return nil
	}
	return "value"
}

var formatExamples = map[string]string{
	"date":      "2024-01-01",
	"date-time": "2024-01-01T00:00:00Z",
	"uuid":      "3fa85f64-5717-4562-b3fc-2c963f66afa6",
	"email":     "user@example.com",
	"uri":       "https://example.com",
	"url":       "https://example.com",
	"hostname":  "example.com",
	"ipv4":      "192.168.0.1",
	"ipv6":      "2001:db8::1",
}
