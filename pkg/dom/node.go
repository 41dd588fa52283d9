// Package dom holds a small document tree built from line-oriented markup,
// together with the structural edits that can be applied to it.
package dom

// Kind tells an element apart from a run of text.
type Kind int

const (
	TextNode Kind = iota
	ElementNode
)

func (k Kind) String() string {
	if k == ElementNode {
		return "element"
	}
	return "text"
}

// Node is one entry in a first-child/next-sibling tree. For an element the
// Label is the tag name without angle brackets, for text it is the literal
// content of the line.
type Node struct {
	Kind        Kind
	Label       string
	FirstChild  *Node
	NextSibling *Node
}

// Tree owns the top-level sibling chain headed by Root.
type Tree struct {
	Root *Node
}

const (
	NameTable     = "table"
	NameBold      = "b"
	NameEmphasis  = "em"
	NameParagraph = "p"
	NameOrdered   = "ol"
	NameUnordered = "ul"
	NameListItem  = "li"
)

// NewText returns a detached text node.
func NewText(text string) *Node {
	return &Node{Kind: TextNode, Label: text}
}

// NewElement returns an element whose child chain is the given nodes, in order.
// The children must be detached.
func NewElement(name string, children ...*Node) *Node {
	n := &Node{Kind: ElementNode, Label: name}
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

func (n *Node) IsElement() bool {
	return n.Kind == ElementNode
}

// AppendChild links c as the last entry of n's child chain.
func (n *Node) AppendChild(c *Node) {
	if n.FirstChild == nil {
		n.FirstChild = c
		return
	}
	last := n.FirstChild
	for last.NextSibling != nil {
		last = last.NextSibling
	}
	last.NextSibling = c
}

// Children returns the child chain as a slice. The slice is a snapshot; the
// links remain the source of truth.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// clone makes a deep copy of the node, its descendants and its following siblings.
func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Kind:        n.Kind,
		Label:       n.Label,
		FirstChild:  n.FirstChild.clone(),
		NextSibling: n.NextSibling.clone(),
	}
}

// Clone returns a deep copy of the tree sharing no nodes with the original.
func (t *Tree) Clone() *Tree {
	return &Tree{Root: t.Root.clone()}
}

// Equal reports whether two trees have the same shape, kinds and labels.
func (t *Tree) Equal(other *Tree) bool {
	return equalChain(t.Root, other.Root)
}

func equalChain(a, b *Node) bool {
	for a != nil && b != nil {
		if a.Kind != b.Kind || a.Label != b.Label || !equalChain(a.FirstChild, b.FirstChild) {
			return false
		}
		a, b = a.NextSibling, b.NextSibling
	}
	return a == nil && b == nil
}

// lastInChain follows NextSibling links from n to the end of its chain.
func lastInChain(n *Node) *Node {
	for n.NextSibling != nil {
		n = n.NextSibling
	}
	return n
}
