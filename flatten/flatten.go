// Package flatten projects a schema into an ordered list of display rows.
//
// Each property becomes one row, indented by its nesting depth. Arrays are
// bracketed by synthetic "[" and "]" rows with their item schema between.
// Every $ref is expanded at most once per call: a pointer that was already
// expanded anywhere in the output becomes a single row marked Circular.
package flatten

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/erraggy/oasexplorer/schema"
)

// Option configures a flatten call.
type Option func(*config) error

type config struct {
	rootName string
}

// WithRootName names the root schema. A named root array gets a heading row
// and a scalar root uses the name for its single row.
func WithRootName(name string) Option {
	return func(cfg *config) error {
		cfg.rootName = name
		return nil
	}
}

// Flatten returns the rows describing n. $ref pointers are resolved with r;
// a nil resolver leaves them as single rows.
func Flatten(n *schema.Node, r schema.Resolver) []Row {
	rows, _ := FlattenWithOptions(n, r)
	return rows
}

// FlattenWithOptions is Flatten with explicit options.
func FlattenWithOptions(n *schema.Node, r schema.Resolver, opts ...Option) ([]Row, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	f := &flattener{
		guard: &guard{
			resolver: r,
			seen:     mapset.NewThreadUnsafeSet[string](),
			missing:  mapset.NewThreadUnsafeSet[string](),
		},
	}
	f.root(n, cfg.rootName)
	return f.rows, nil
}

// guard is a Resolver that resolves each pointer at most once. It is shared
// by every normalization in a flatten call.
type guard struct {
	resolver schema.Resolver
	seen     mapset.Set[string]
	missing  mapset.Set[string]
}

func (g *guard) Resolve(ref string) (*schema.Node, bool) {
	if g.seen.Contains(ref) {
		return nil, false
	}
	if g.resolver == nil {
		g.missing.Add(ref)
		return nil, false
	}
	n, ok := g.resolver.Resolve(ref)
	if !ok {
		g.missing.Add(ref)
		return nil, false
	}
	g.seen.Add(ref)
	return n, true
}

type flattener struct {
	guard *guard
	rows  []Row
}

func (f *flattener) emit(row Row) {
	f.rows = append(f.rows, row)
}

// expand normalizes n and returns the location in effect for it.
func (f *flattener) expand(n *schema.Node, loc schema.Location) (*schema.Node, schema.Location) {
	c := schema.Normalize(n, f.guard)
	if c != nil && c.ParamLocation != schema.LocationNone {
		loc = c.ParamLocation
	}
	return c, loc
}

// leaf emits a row for a node that is not descended into. The ref of an
// unexpanded pointer is kept so callers can tell it apart from a scalar.
func (f *flattener) leaf(name string, c *schema.Node, depth int, required bool, loc schema.Location, via string) {
	row := newRow(name, c, depth, required, loc)
	row.Ref = via
	if schema.Classify(c) == schema.KindRef {
		row.Ref = c.Ref
		if f.guard.missing.Contains(c.Ref) {
			row.Type = c.Ref
		} else {
			row.Circular = true
		}
	}
	f.emit(row)
}

func (f *flattener) root(n *schema.Node, name string) {
	if n == nil {
		return
	}
	c, loc := f.expand(n, schema.LocationNone)
	switch schema.Classify(c) {
	case schema.KindObject:
		f.properties(c, 0, loc)
	case schema.KindArray:
		if name != "" {
			row := newRow(name, c, 0, false, loc)
			row.Structural = true
			row.Ref = n.Ref
			f.emit(row)
			f.array(c, 1, loc)
			return
		}
		f.array(c, 0, loc)
	default:
		f.leaf(name, c, 0, false, loc, n.Ref)
	}
}

// properties emits one row per property of obj followed, for objects and
// arrays, by the rows of its children one level deeper.
func (f *flattener) properties(obj *schema.Node, depth int, loc schema.Location) {
	if obj.Properties != nil {
		for pair := obj.Properties.Oldest(); pair != nil; pair = pair.Next() {
			f.property(pair.Key, pair.Value, depth, obj.IsRequired(pair.Key), loc)
		}
	}
	if obj.AdditionalProperties != nil {
		f.property(AdditionalPropertyRow, obj.AdditionalProperties, depth, false, loc)
	}
}

func (f *flattener) property(name string, p *schema.Node, depth int, required bool, loc schema.Location) {
	if p.IsBool() {
		f.emit(newRow(name, p, depth, required, loc))
		return
	}

	c, ploc := f.expand(p, loc)
	switch schema.Classify(c) {
	case schema.KindObject:
		row := newRow(name, c, depth, required, ploc)
		row.Ref = p.Ref
		f.emit(row)
		f.properties(c, depth+1, ploc)
	case schema.KindArray:
		row := newRow(name, c, depth, required, ploc)
		row.Ref = p.Ref
		f.emit(row)
		f.array(c, depth+1, ploc)
	default:
		f.leaf(name, c, depth, required, ploc, p.Ref)
	}
}

// array emits the bracket rows of arr with its item rows between them.
func (f *flattener) array(arr *schema.Node, depth int, loc schema.Location) {
	f.emit(Row{Depth: depth, Name: OpenBracket, Structural: true, ParamLocation: loc})
	f.items(arr.Items, depth+1, loc)
	f.emit(Row{Depth: depth, Name: CloseBracket, Structural: true, ParamLocation: loc})
}

func (f *flattener) items(item *schema.Node, depth int, loc schema.Location) {
	if item == nil {
		f.emit(newRow(ItemsName, schema.Any(), depth, false, loc))
		return
	}
	if item.IsBool() {
		f.emit(newRow(ItemsName, item, depth, false, loc))
		return
	}

	c, iloc := f.expand(item, loc)
	switch schema.Classify(c) {
	case schema.KindObject:
		f.properties(c, depth, iloc)
	case schema.KindArray:
		f.array(c, depth, iloc)
	default:
		f.leaf(ItemsName, c, depth, false, iloc, item.Ref)
	}
}
