package tree

import (
	"io"
	"strings"
)

// Render draws nodes as an indented outline with box-drawing connectors.
func Render(w io.Writer, nodes []Node) error {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Label)
		b.WriteByte('\n')
		renderChildren(&b, n.Children, "")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderChildren(b *strings.Builder, children []Node, prefix string) {
	for i, c := range children {
		last := i == len(children)-1
		connector, indent := "├── ", "│   "
		if last {
			connector, indent = "└── ", "    "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(c.Label)
		b.WriteByte('\n')
		renderChildren(b, c.Children, prefix+indent)
	}
}
