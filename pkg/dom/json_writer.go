package dom

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// nodeRecord is the nested form of a node used by the JSON and YAML formats.
type nodeRecord struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Label    string       `json:"label" yaml:"label"`
	Children []nodeRecord `json:"children,omitempty" yaml:"children,omitempty"`
}

func toRecords(chain *Node, options *PrintOptions) []nodeRecord {
	var records []nodeRecord
	for n := chain; n != nil; n = n.NextSibling {
		label := n.Label
		if !n.IsElement() {
			label = TrimText(label, options.TrimText)
		}
		records = append(records, nodeRecord{
			Kind:     n.Kind.String(),
			Label:    label,
			Children: toRecords(n.FirstChild, options),
		})
	}
	return records
}

func fromRecords(records []nodeRecord) (*Node, error) {
	var head, last *Node
	for _, r := range records {
		var n *Node
		switch r.Kind {
		case "element":
			n = &Node{Kind: ElementNode, Label: r.Label}
		case "text":
			if len(r.Children) > 0 {
				return nil, fmt.Errorf("text node %q has children", r.Label)
			}
			n = &Node{Kind: TextNode, Label: r.Label}
		default:
			return nil, fmt.Errorf("unknown node kind %q", r.Kind)
		}
		children, err := fromRecords(r.Children)
		if err != nil {
			return nil, err
		}
		n.FirstChild = children
		if head == nil {
			head = n
		} else {
			last.NextSibling = n
		}
		last = n
	}
	return head, nil
}

// PrintTreeJSON writes the top-level chain as a JSON array of nested nodes.
func PrintTreeJSON(tree *Tree, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	if options.Indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", options.Indent))
	}
	records := toRecords(tree.Root, options)
	if records == nil {
		records = []nodeRecord{}
	}
	return encoder.Encode(records)
}

// ReadTreeJSON is the inverse of PrintTreeJSON when no text was trimmed.
func ReadTreeJSON(input io.Reader) (*Tree, error) {
	var records []nodeRecord
	if err := json.NewDecoder(input).Decode(&records); err != nil {
		return nil, err
	}
	root, err := fromRecords(records)
	if err != nil {
		return nil, err
	}
	return &Tree{Root: root}, nil
}
