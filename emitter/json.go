package emitter

import "strings"

const jsonIndent = "  "

// ToJSON renders v as JSON indented by two spaces, without a trailing
// newline.
func ToJSON(v any) string {
	var b strings.Builder
	writeJSON(&b, v, 0, true)
	return b.String()
}

// Inline renders v as compact single-line JSON.
func Inline(v any) string {
	var b strings.Builder
	writeJSON(&b, v, 0, false)
	return b.String()
}

func writeJSON(b *strings.Builder, v any, depth int, pretty bool) {
	if entries, ok := mapping(v); ok {
		if len(entries) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, e := range entries {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, depth+1, pretty)
			b.WriteString(quote(e.key))
			b.WriteByte(':')
			if pretty {
				b.WriteByte(' ')
			}
			writeJSON(b, e.value, depth+1, pretty)
		}
		newline(b, depth, pretty)
		b.WriteByte('}')
		return
	}

	if items, ok := sequence(v); ok {
		if len(items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, depth+1, pretty)
			writeJSON(b, item, depth+1, pretty)
		}
		newline(b, depth, pretty)
		b.WriteByte(']')
		return
	}

	b.WriteString(scalar(v))
}

func newline(b *strings.Builder, depth int, pretty bool) {
	if !pretty {
		return
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(jsonIndent, depth))
}
