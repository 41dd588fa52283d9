package dom

// BoldRow wraps the content of every column in the given 1-based row of the
// first table with a <b> element. Rows and columns are taken by position
// only: the row is the table's nth child and its columns are that child's
// children, whatever they are called. A table with no children is passed
// over in favour of the next one. Columns that are text are left as they are,
// since text cannot hold a <b> child. A missing table or row is not an error.
func (t *Tree) BoldRow(row int) {
	if row < 1 {
		return
	}
	table := t.FindFirstFunc(func(n *Node) bool {
		return n.Label == NameTable && n.FirstChild != nil
	})
	if table == nil {
		return
	}
	target := table.FirstChild
	for i := 1; i < row && target != nil; i++ {
		target = target.NextSibling
	}
	if target == nil {
		return
	}
	for col := target.FirstChild; col != nil; col = col.NextSibling {
		// Text cannot own children.
		if !col.IsElement() {
			continue
		}
		col.FirstChild = &Node{Kind: ElementNode, Label: NameBold, FirstChild: col.FirstChild}
	}
}
