package dom

// ReplaceTag renames every element labelled oldName to newName. Text whose
// content happens to equal oldName is left alone.
func (t *Tree) ReplaceTag(oldName, newName string) {
	replaceTag(t.Root, oldName, newName)
}

func replaceTag(chain *Node, oldName, newName string) {
	for n := chain; n != nil; n = n.NextSibling {
		if !n.IsElement() {
			continue
		}
		replaceTag(n.FirstChild, oldName, newName)
		if n.Label == oldName {
			n.Label = newName
		}
	}
}
