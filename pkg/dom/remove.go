package dom

// removable maps each tag RemoveTag accepts to whether it is a list, whose
// <li> children become <p> when it is unwrapped.
var removable = map[string]bool{
	NameParagraph: false,
	NameEmphasis:  false,
	NameBold:      false,
	NameOrdered:   true,
	NameUnordered: true,
}

// RemoveTag unwraps every element labelled name that has children, promoting
// its children into its place. Only p, em, b, ol and ul may be removed; for ol and ul the
// <li> children are renamed to <p> first. The tree is untouched when name is
// not accepted.
func (t *Tree) RemoveTag(name string) error {
	list, ok := removable[name]
	if !ok {
		return &InvalidArgumentError{Name: "tag", Value: name}
	}
	removeTag(&t.Root, name, list)
	return nil
}

// removeTag scans the chain whose head is stored in *link. The link argument
// always points at the slot that refers to the current node, so a splice only
// has to overwrite that slot and the tail of the promoted children.
func removeTag(link **Node, name string, list bool) {
	for *link != nil {
		n := *link
		if !n.IsElement() {
			link = &n.NextSibling
			continue
		}
		removeTag(&n.FirstChild, name, list)
		// Empty elements have nothing to promote and stay where they are.
		if n.Label != name || n.FirstChild == nil {
			link = &n.NextSibling
			continue
		}
		if list {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.IsElement() && c.Label == NameListItem {
					c.Label = NameParagraph
				}
			}
		}
		// The promoted children were cleaned by the recursive call above, so
		// scanning resumes after the last of them.
		last := lastInChain(n.FirstChild)
		last.NextSibling = n.NextSibling
		*link = n.FirstChild
		link = &last.NextSibling
	}
}
