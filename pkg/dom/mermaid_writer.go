package dom

import (
	"fmt"
	"io"
	"strings"
)

// PrintTreeMermaid writes a Mermaid flowchart, top to bottom.
func PrintTreeMermaid(tree *Tree, output io.Writer, options *PrintOptions) error {
	w := &errWriter{w: output}
	w.println("graph TD")
	counter := 0
	for n := tree.Root; n != nil; n = n.NextSibling {
		printNodeMermaid(w, n, "", &counter, options)
	}
	return w.err
}

func printNodeMermaid(w *errWriter, n *Node, parentID string, counter *int, options *PrintOptions) {
	*counter++
	nodeID := fmt.Sprintf("n%d", *counter)
	label := escapeMermaidValue(displayLabel(n, options))
	if n.IsElement() {
		w.printf("  %s[\"%s\"]\n", nodeID, label)
	} else {
		w.printf("  %s(\"%s\")\n", nodeID, label)
	}
	if parentID != "" {
		w.printf("  %s --> %s\n", parentID, nodeID)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		printNodeMermaid(w, c, nodeID, counter, options)
	}
}

func escapeMermaidValue(value string) string {
	return strings.ReplaceAll(value, `"`, "#quot;")
}
