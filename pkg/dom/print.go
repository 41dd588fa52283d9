package dom

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PrintOptions controls the diagnostic output formats.
type PrintOptions struct {
	Format    string `yaml:"option-format,omitempty"`
	Indent    int    `yaml:"option-indent,omitempty"`
	TrimText  int    `yaml:"option-trim-text,omitempty"`
	ShowKinds bool   `yaml:"option-show-kinds,omitempty"`
}

// PrintFunc writes a tree to output in one particular format.
type PrintFunc func(tree *Tree, output io.Writer, options *PrintOptions) error

const DefaultFormat = "HTML"

// PickPrintFunc selects the writer for a format name, ignoring case.
func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case "HTML", "":
		return PrintHTML, nil
	case "JSON":
		return PrintTreeJSON, nil
	case "YAML":
		return PrintTreeYAML, nil
	case "ASCIITREE":
		return PrintTreeAsciiTree, nil
	case "DOT":
		return PrintTreeDOT, nil
	case "MERMAID":
		return PrintTreeMermaid, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// PrintHTML writes the line format, ignoring options.
func PrintHTML(tree *Tree, output io.Writer, _ *PrintOptions) error {
	_, err := tree.WriteTo(output)
	return err
}

// TrimText shortens text longer than trimLength runes for display, ending it
// with an ellipsis.
func TrimText(text string, trimLength int) string {
	if trimLength <= 0 || utf8.RuneCountInString(text) <= trimLength {
		return text
	}
	runes := []rune(text)
	// Reserve space for Unicode ellipsis (1 character: "…")
	if trimLength >= 2 {
		return string(runes[:trimLength-1]) + "…"
	}
	return string(runes[:trimLength])
}

// displayLabel is the label shown by the diagnostic writers.
func displayLabel(n *Node, options *PrintOptions) string {
	if n.IsElement() {
		return n.Label
	}
	label := TrimText(n.Label, options.TrimText)
	if options.ShowKinds {
		return "text: " + label
	}
	return label
}
