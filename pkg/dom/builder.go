package dom

import "strings"

// Builder assembles a Tree from lines supplied one at a time. Each line is a
// single open marker (<name>), close marker (</name>) or line of text.
type Builder struct {
	tree   *Tree
	open   []*Node // elements awaiting their close marker, innermost last
	lineNo int
	closed bool // the root element has been closed
}

func NewBuilder() *Builder {
	return &Builder{tree: &Tree{}}
}

// Build constructs a tree from a complete sequence of lines.
func Build(lines []string) (*Tree, error) {
	b := NewBuilder()
	for _, line := range lines {
		if err := b.AddLine(line); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}

// AddLine consumes the next line of the document.
func (b *Builder) AddLine(line string) error {
	b.lineNo++
	if line == "" {
		return b.malformed("empty line")
	}
	switch {
	case isCloseMarker(line):
		if len(b.open) == 0 {
			return b.malformed("close marker " + line + " has no open element")
		}
		b.open = b.open[:len(b.open)-1]
		if len(b.open) == 0 {
			b.closed = true
		}
	case isOpenMarker(line):
		name := line[1 : len(line)-1]
		if name == "" {
			return b.malformed("empty element name")
		}
		if err := b.attach(NewElement(name)); err != nil {
			return err
		}
	default:
		if len(b.open) == 0 {
			return b.malformed("text outside of any element")
		}
		if err := b.attach(NewText(line)); err != nil {
			return err
		}
	}
	return nil
}

// attach links n as the last child of the innermost open element, or makes
// it the root. Elements are pushed onto the open stack.
func (b *Builder) attach(n *Node) error {
	if len(b.open) == 0 {
		if b.closed {
			return b.malformed("element <" + n.Label + "> follows the closed root element")
		}
		b.tree.Root = n
	} else {
		b.open[len(b.open)-1].AppendChild(n)
	}
	if n.IsElement() {
		b.open = append(b.open, n)
	}
	return nil
}

// Finish returns the tree once every open element has been closed. An empty
// line sequence yields an empty tree.
func (b *Builder) Finish() (*Tree, error) {
	if len(b.open) > 0 {
		names := make([]string, len(b.open))
		for i, n := range b.open {
			names[i] = "<" + n.Label + ">"
		}
		return nil, &MalformedInputError{Reason: "unclosed element " + strings.Join(names, " ")}
	}
	return b.tree, nil
}

func (b *Builder) malformed(reason string) error {
	return &MalformedInputError{Line: b.lineNo, Reason: reason}
}

func isCloseMarker(line string) bool {
	return len(line) >= 3 && line[0] == '<' && line[1] == '/' && line[len(line)-1] == '>'
}

func isOpenMarker(line string) bool {
	return len(line) >= 2 && line[0] == '<' && line[len(line)-1] == '>' && line[1] != '/'
}
