package dom

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToAsciiTree converts one node and its descendants for go-asciitree.
func convertToAsciiTree(n *Node, options *PrintOptions) AsciiNode {
	label := n.Label
	if !n.IsElement() {
		label = TrimText(label, options.TrimText)
	}
	var props []string
	if options.ShowKinds {
		props = append(props, "kind: "+n.Kind.String())
	}
	var children []AsciiNode
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, convertToAsciiTree(c, options))
	}
	return AsciiNode{
		Label:    label,
		Props:    props,
		Children: children,
	}
}

func PrintTreeAsciiTree(tree *Tree, output io.Writer, options *PrintOptions) error {
	// Each top-level node is drawn as its own tree.
	for n := tree.Root; n != nil; n = n.NextSibling {
		if _, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToAsciiTree(n, options))); err != nil {
			return err
		}
	}
	return nil
}
