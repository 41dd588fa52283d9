package dom

import (
	"io"
	"strings"
)

// Render returns the tree in the line format accepted by Build.
func (t *Tree) Render() string {
	var sb strings.Builder
	renderChain(&sb, t.Root)
	return sb.String()
}

// WriteTo writes the rendered tree to w.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

// Lines returns the rendered tree one line per entry, without line breaks.
func (t *Tree) Lines() []string {
	rendered := t.Render()
	if rendered == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
}

func renderChain(sb *strings.Builder, chain *Node) {
	for n := chain; n != nil; n = n.NextSibling {
		if !n.IsElement() {
			sb.WriteString(n.Label)
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString("<")
		sb.WriteString(n.Label)
		sb.WriteString(">\n")
		renderChain(sb, n.FirstChild)
		sb.WriteString("</")
		sb.WriteString(n.Label)
		sb.WriteString(">\n")
	}
}
