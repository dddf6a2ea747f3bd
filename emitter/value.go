package emitter

import (
	"slices"

	"github.com/erraggy/oasexplorer/document"
)

type entry struct {
	key   string
	value any
}

// mapping returns the entries of an ordered or plain map.
func mapping(v any) ([]entry, bool) {
	switch m := v.(type) {
	case *document.Object:
		if m == nil {
			return nil, false
		}
		out := make([]entry, 0, m.Len())
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			out = append(out, entry{key: pair.Key, value: pair.Value})
		}
		return out, true
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make([]entry, 0, len(m))
		for _, k := range keys {
			out = append(out, entry{key: k, value: m[k]})
		}
		return out, true
	}
	return nil, false
}

// sequence returns the items of a list value.
func sequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return out, true
	}
	return nil, false
}

// containerLen reports the size of a mapping or sequence. ok is false for
// scalars.
func containerLen(v any) (n int, ok bool) {
	if entries, isMap := mapping(v); isMap {
		return len(entries), true
	}
	if items, isSeq := sequence(v); isSeq {
		return len(items), true
	}
	return 0, false
}

func isNonEmptyContainer(v any) bool {
	n, ok := containerLen(v)
	return ok && n > 0
}

// ToPlain converts ordered mappings to map[string]any, recursively, for
// consumers that only understand plain Go values.
func ToPlain(v any) any {
	if entries, ok := mapping(v); ok {
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.key] = ToPlain(e.value)
		}
		return out
	}
	if items, ok := sequence(v); ok {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ToPlain(item)
		}
		return out
	}
	return v
}
