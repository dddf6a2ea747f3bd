package schema

import (
	"strings"

	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/pathutil"
	"github.com/erraggy/oasexplorer/oaserrors"
)

// Resolver resolves schema pointers. A nil Resolver resolves nothing.
type Resolver interface {
	// Resolve returns the schema a pointer refers to, or false when the
	// pointer has an unsupported shape or names no known schema.
	Resolve(ref string) (*Node, bool)
}

// Table holds the component schemas of one document.
type Table struct {
	names  []string
	byName map[string]*Node
}

// NewTable builds a table from a components.schemas mapping. Declared names
// are registered first, then for each schema in order its xml.name and the
// prefix of its name before the first hyphen. A name that is already
// registered is never replaced.
func NewTable(schemas *document.Object) *Table {
	t := &Table{byName: make(map[string]*Node, document.Len(schemas))}
	if schemas == nil {
		return t
	}

	type entry struct {
		name string
		node *Node
	}
	entries := make([]entry, 0, schemas.Len())
	for pair := schemas.Oldest(); pair != nil; pair = pair.Next() {
		n := FromValue(pair.Value)
		if n == nil {
			n = &Node{}
		}
		entries = append(entries, entry{name: pair.Key, node: n})
		t.names = append(t.names, pair.Key)
		t.register(pair.Key, n)
	}

	for _, e := range entries {
		if e.node.XMLName != "" {
			t.register(e.node.XMLName, e.node)
		}
		if prefix, _, found := strings.Cut(e.name, "-"); found && prefix != "" {
			t.register(prefix, e.node)
		}
	}
	return t
}

// TableFromDocument builds a table from doc's components.schemas.
func TableFromDocument(doc *document.Document) *Table {
	if doc == nil {
		return NewTable(nil)
	}
	return NewTable(doc.Schemas())
}

func (t *Table) register(name string, n *Node) {
	if _, exists := t.byName[name]; exists {
		return
	}
	t.byName[name] = n
}

// Resolve implements Resolver. Only "#/components/schemas/<name>" pointers
// are supported; the name is percent-decoded and then JSON-Pointer-unescaped.
func (t *Table) Resolve(ref string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	name, ok := pathutil.ComponentName(ref, pathutil.RefPrefixSchemas)
	if !ok {
		return nil, false
	}
	return t.Lookup(name)
}

// LookupRef is like Resolve but explains a failed lookup.
func (t *Table) LookupRef(ref string) (*Node, error) {
	if _, ok := pathutil.ComponentName(ref, pathutil.RefPrefixSchemas); !ok {
		return nil, &oaserrors.ReferenceError{Ref: ref, Message: "unsupported pointer (expected " + pathutil.RefPrefixSchemas + "<name>)"}
	}
	n, ok := t.Resolve(ref)
	if !ok {
		return nil, &oaserrors.ReferenceError{Ref: ref, Message: "schema not found"}
	}
	return n, nil
}

// Lookup returns the schema registered under a declared name or alias.
func (t *Table) Lookup(name string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	n, ok := t.byName[name]
	return n, ok
}

// Names returns the declared schema names in document order. Aliases are
// not included.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return t.names
}

// Len returns the number of declared schemas.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

var _ Resolver = (*Table)(nil)
