// Package tree projects a schema into a labeled hierarchy for display.
//
// The walk mirrors the flatten package: objects get one child per property,
// arrays a single "items" child, and each composition keyword a wrapper child
// holding one numbered child per branch. Unlike flatten, the schema is not
// normalized, so the tree shows compositions as written.
//
// $ref pointers are shown as leaves unless a resolver is supplied with
// [WithResolver], in which case each pointer is expanded unless it is already
// being expanded higher up the same branch.
package tree

import (
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/erraggy/oasexplorer/internal/pathutil"
	"github.com/erraggy/oasexplorer/schema"
)

// Node is one entry in the tree.
type Node struct {
	// Label summarizes the schema at this position
	Label string
	// Key is a dotted path that is unique within the tree
	Key      string
	Children []Node
}

// DefaultRootName names the root when no name is given.
const DefaultRootName = "root"

// Option configures a build.
type Option func(*config) error

type config struct {
	resolver schema.Resolver
}

// WithResolver expands $ref pointers using r.
func WithResolver(r schema.Resolver) Option {
	return func(cfg *config) error {
		cfg.resolver = r
		return nil
	}
}

// Build returns the tree for n with a single root named rootName. Boolean
// and nil roots produce an empty tree.
func Build(n *schema.Node, rootName string) []Node {
	nodes, _ := BuildWithOptions(n, rootName)
	return nodes
}

// BuildWithOptions is Build with explicit options.
func BuildWithOptions(n *schema.Node, rootName string, opts ...Option) ([]Node, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if n == nil || n.IsBool() {
		return []Node{}, nil
	}
	if rootName == "" {
		rootName = DefaultRootName
	}

	path := pathutil.Get()
	defer pathutil.Put(path)

	b := &builder{
		resolver: cfg.resolver,
		inFlight: mapset.NewThreadUnsafeSet[string](),
		path:     path,
	}
	path.Push(rootName)
	return []Node{b.node(rootName, n)}, nil
}

type builder struct {
	resolver schema.Resolver
	inFlight mapset.Set[string]
	path     *pathutil.PathBuilder
}

// node builds the entry for n at the current path.
func (b *builder) node(name string, n *schema.Node) Node {
	out := Node{Key: b.path.String()}

	if n != nil && n.Ref != "" && b.resolver != nil && !b.inFlight.Contains(n.Ref) {
		if resolved, ok := b.resolver.Resolve(n.Ref); ok {
			b.inFlight.Add(n.Ref)
			defer b.inFlight.Remove(n.Ref)
			out.Label = label(name, n, resolved)
			out.Children = b.children(resolved)
			return out
		}
	}

	out.Label = label(name, n, nil)
	out.Children = b.children(n)
	return out
}

func (b *builder) child(name string, n *schema.Node, push func()) Node {
	push()
	defer b.path.Pop()
	return b.node(name, n)
}

func (b *builder) children(n *schema.Node) []Node {
	if n == nil || n.IsBool() || n.Ref != "" {
		return nil
	}

	var out []Node
	if n.Properties != nil {
		for pair := n.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out = append(out, b.child(pair.Key, pair.Value, func() { b.path.Push(pair.Key) }))
		}
	}
	if n.AdditionalProperties != nil {
		out = append(out, b.child("additionalProperties", n.AdditionalProperties, func() { b.path.Push("additionalProperties") }))
	}
	if n.Items != nil || schema.Classify(n) == schema.KindArray {
		items := n.Items
		if items == nil {
			items = schema.Any()
		}
		out = append(out, b.child("items", items, b.path.PushItems))
	}

	out = b.composition(out, "oneOf", n.OneOf)
	out = b.composition(out, "anyOf", n.AnyOf)
	out = b.composition(out, "allOf", n.AllOf)
	return out
}

// composition appends a wrapper entry for keyword holding one entry per
// branch.
func (b *builder) composition(out []Node, keyword string, branches []*schema.Node) []Node {
	if len(branches) == 0 {
		return out
	}
	b.path.Push(keyword)
	defer b.path.Pop()

	wrapper := Node{
		Label:    keyword + " (" + strconv.Itoa(len(branches)) + ")",
		Key:      b.path.String(),
		Children: make([]Node, 0, len(branches)),
	}
	for i, branch := range branches {
		wrapper.Children = append(wrapper.Children, b.child("#"+strconv.Itoa(i+1), branch, func() { b.path.PushIndex(i) }))
	}
	return append(out, wrapper)
}
