package dom

// FindFirst returns the first element labelled name in document order, or nil.
// A node is examined before its children, and its children before its next sibling.
func (t *Tree) FindFirst(name string) *Node {
	return t.FindFirstFunc(func(n *Node) bool { return n.Label == name })
}

// FindFirstFunc returns the first element, in the same order as FindFirst,
// for which match reports true.
func (t *Tree) FindFirstFunc(match func(*Node) bool) *Node {
	return findFirst(t.Root, match)
}

func findFirst(chain *Node, match func(*Node) bool) *Node {
	for n := chain; n != nil; n = n.NextSibling {
		if !n.IsElement() {
			continue
		}
		if match(n) {
			return n
		}
		if found := findFirst(n.FirstChild, match); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node in document order along with its depth (0 for the
// top-level chain). Returning false from fn skips the node's descendants.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.Root, 0, fn)
}

func walk(chain *Node, depth int, fn func(*Node, int) bool) {
	for n := chain; n != nil; n = n.NextSibling {
		if fn(n, depth) {
			walk(n.FirstChild, depth+1, fn)
		}
	}
}

// CountElements returns how many elements are labelled name.
func (t *Tree) CountElements(name string) int {
	count := 0
	t.Walk(func(n *Node, _ int) bool {
		if n.IsElement() && n.Label == name {
			count++
		}
		return true
	})
	return count
}
