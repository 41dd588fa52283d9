package dom

import (
	"fmt"
	"io"
	"strings"
)

func PrintTreeDOT(tree *Tree, output io.Writer, options *PrintOptions) error {
	w := &errWriter{w: output}
	// Initialize the DOT graph
	w.println(`digraph G {`)
	w.println(`  bgcolor="transparent";`)
	w.println(`  node [shape="box", style="filled", fontname="Ubuntu Mono"];`)

	counter := 0
	for n := tree.Root; n != nil; n = n.NextSibling {
		printNodeDOT(w, n, "", &counter, options)
	}

	w.println(`}`)
	return w.err
}

func printNodeDOT(w *errWriter, n *Node, parentID string, counter *int, options *PrintOptions) {
	*counter++
	nodeID := fmt.Sprintf("node_%d", *counter)

	fillColor := "white"
	shape := "note"
	if n.IsElement() {
		shape = "box"
		fillColor = tagColors[n.Label]
		if fillColor == "" {
			fillColor = "lightgray"
		}
	}
	label := escapeDOTValue(displayLabel(n, options))
	w.printf("  \"%s\" [label=\"%s\", shape=\"%s\", fillcolor=\"%s\"];\n", nodeID, label, shape, fillColor)

	if parentID != "" {
		w.printf("  \"%s\" -> \"%s\";\n", parentID, nodeID)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		printNodeDOT(w, c, nodeID, counter, options)
	}
}

func escapeDOTValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

var tagColors = map[string]string{
	"html":  "lightpink",
	"body":  "#FFD8E1",
	"table": "lightgreen",
	"tr":    "Honeydew",
	"td":    "PaleTurquoise",
	"b":     "#C0FFC0",
	"em":    "#C0FFC0",
	"p":     "lightgoldenrodyellow",
	"ul":    "Lavender",
	"ol":    "Lavender",
	"li":    "#E6E6FA",
}

// errWriter remembers the first write error so callers can check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

func (e *errWriter) println(s string) {
	if e.err == nil {
		_, e.err = fmt.Fprintln(e.w, s)
	}
}
