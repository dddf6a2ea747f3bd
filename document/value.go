package document

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.yaml.in/yaml/v4"
)

// Object is an insertion-ordered mapping, the decoded form of every YAML or
// JSON mapping in a document.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// DecodeNode converts a yaml.Node tree into ordered generic values.
// Mapping order is preserved; aliases are expanded; scalars are resolved with
// the YAML core schema (timestamps stay strings).
func DecodeNode(n *yaml.Node) any {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return DecodeNode(n.Content[0])

	case yaml.MappingNode:
		obj := NewObject()
		// Content alternates: key, value, key, value...
		for i := 0; i+1 < len(n.Content); i += 2 {
			obj.Set(n.Content[i].Value, DecodeNode(n.Content[i+1]))
		}
		return obj

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			out = append(out, DecodeNode(child))
		}
		return out

	case yaml.AliasNode:
		return DecodeNode(n.Alias)

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return n.Value
		}
		return v
	}
	return nil
}

// AsObject returns v as an *Object. Plain map[string]any values are converted
// with their keys sorted, since Go maps carry no order.
func AsObject(v any) (*Object, bool) {
	switch m := v.(type) {
	case *Object:
		return m, m != nil
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, m[k])
		}
		return obj, true
	}
	return nil, false
}

// Get returns the value stored under key. It is safe on a nil Object.
func Get(o *Object, key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.Get(key)
}

// GetObject returns the mapping stored under key, or nil.
func GetObject(o *Object, key string) *Object {
	v, ok := Get(o, key)
	if !ok {
		return nil
	}
	obj, _ := AsObject(v)
	return obj
}

// GetString returns the string stored under key, or "".
func GetString(o *Object, key string) string {
	v, _ := Get(o, key)
	s, _ := v.(string)
	return s
}

// GetBool returns the boolean stored under key, or false.
func GetBool(o *Object, key string) bool {
	v, _ := Get(o, key)
	b, _ := v.(bool)
	return b
}

// GetSlice returns the sequence stored under key, or nil.
func GetSlice(o *Object, key string) []any {
	v, _ := Get(o, key)
	s, _ := v.([]any)
	return s
}

// Keys returns the keys of o in insertion order.
func Keys(o *Object) []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, o.Len())
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of entries in o. It is safe on a nil Object.
func Len(o *Object) int {
	if o == nil {
		return 0
	}
	return o.Len()
}
