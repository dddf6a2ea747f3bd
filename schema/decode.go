package schema

import (
	"math"

	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/schemautil"
)

// FromValue decodes a raw document value into a Node.
//
// Booleans become shorthand schemas. Mappings become object schemas. Any
// other value, including nil, is not a schema and yields nil. Nested values
// that are not schemas decode to an empty node so that a property or branch
// is never silently dropped.
func FromValue(v any) *Node {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		if t {
			return Any()
		}
		return Never()
	}

	obj, ok := document.AsObject(v)
	if !ok {
		return nil
	}
	return fromObject(obj)
}

func fromChild(v any) *Node {
	if n := FromValue(v); n != nil {
		return n
	}
	return &Node{}
}

func fromObject(obj *document.Object) *Node {
	rawType, _ := obj.Get("type")

	n := &Node{
		Type:        schemautil.GetPrimaryType(rawType),
		Title:       document.GetString(obj, "title"),
		Description: document.GetString(obj, "description"),
		Format:      document.GetString(obj, "format"),
		Nullable:    document.GetBool(obj, "nullable") || schemautil.IsNullable(rawType),
		Deprecated:  document.GetBool(obj, "deprecated"),
		ReadOnly:    document.GetBool(obj, "readOnly"),
		WriteOnly:   document.GetBool(obj, "writeOnly"),
		Ref:         document.GetString(obj, "$ref"),
		Pattern:     document.GetString(obj, "pattern"),
		XMLName:     document.GetString(document.GetObject(obj, "xml"), "name"),
		Required:    stringList(document.GetSlice(obj, "required")),
		Enum:        document.GetSlice(obj, "enum"),
		Examples:    document.GetSlice(obj, "examples"),
		OneOf:       nodeList(document.GetSlice(obj, "oneOf")),
		AnyOf:       nodeList(document.GetSlice(obj, "anyOf")),
		AllOf:       nodeList(document.GetSlice(obj, "allOf")),
		Minimum:     floatValue(obj, "minimum"),
		Maximum:     floatValue(obj, "maximum"),
		MinLength:   intValue(obj, "minLength"),
		MaxLength:   intValue(obj, "maxLength"),
		MinItems:    intValue(obj, "minItems"),
		MaxItems:    intValue(obj, "maxItems"),
	}
	n.Example, _ = obj.Get("example")
	n.Default, _ = obj.Get("default")
	n.Const, _ = obj.Get("const")

	if props := document.GetObject(obj, "properties"); props != nil {
		n.Properties = NewProperties()
		for pair := props.Oldest(); pair != nil; pair = pair.Next() {
			n.Properties.Set(pair.Key, fromChild(pair.Value))
		}
	}

	if items, ok := obj.Get("items"); ok {
		// Tuple-style items lists are reduced to their first entry.
		if list, isList := items.([]any); isList {
			if len(list) > 0 {
				n.Items = fromChild(list[0])
			}
		} else {
			n.Items = fromChild(items)
		}
	}

	if ap, ok := obj.Get("additionalProperties"); ok && ap != nil {
		n.AdditionalProperties = fromChild(ap)
	}

	return n
}

func nodeList(raw []any) []*Node {
	if len(raw) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(raw))
	for _, v := range raw {
		out = append(out, fromChild(v))
	}
	return out
}

func stringList(raw []any) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func floatValue(obj *document.Object, key string) *float64 {
	v, _ := obj.Get(key)
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	return &f
}

func intValue(obj *document.Object, key string) *int {
	v, _ := obj.Get(key)
	f, ok := toFloat(v)
	if !ok || f < 0 || f > math.MaxInt32 {
		return nil
	}
	i := int(f)
	return &i
}
