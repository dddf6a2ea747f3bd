package emitter

import "strings"

// ToYAML renders v as block-style YAML. The result always ends in a newline.
func ToYAML(v any) string {
	var b strings.Builder
	writeYAML(&b, v, 0)
	return b.String()
}

func writeYAML(b *strings.Builder, v any, indent int) {
	pad := strings.Repeat(" ", indent)

	if entries, ok := mapping(v); ok && len(entries) > 0 {
		for _, e := range entries {
			b.WriteString(pad)
			b.WriteString(yamlString(e.key))
			b.WriteByte(':')
			if isNonEmptyContainer(e.value) {
				b.WriteByte('\n')
				writeYAML(b, e.value, indent+2)
				continue
			}
			b.WriteByte(' ')
			b.WriteString(yamlScalar(e.value))
			b.WriteByte('\n')
		}
		return
	}

	if items, ok := sequence(v); ok && len(items) > 0 {
		for _, item := range items {
			b.WriteString(pad)
			if isNonEmptyContainer(item) {
				b.WriteString("-\n")
				writeYAML(b, item, indent+2)
				continue
			}
			b.WriteString("- ")
			b.WriteString(yamlScalar(item))
			b.WriteByte('\n')
		}
		return
	}

	b.WriteString(pad)
	b.WriteString(yamlScalar(v))
	b.WriteByte('\n')
}

// yamlScalar renders a scalar or an empty container in flow style.
func yamlScalar(v any) string {
	if _, ok := mapping(v); ok {
		return "{}"
	}
	if _, ok := sequence(v); ok {
		return "[]"
	}
	if s, ok := v.(string); ok {
		return yamlString(s)
	}
	return scalar(v)
}
