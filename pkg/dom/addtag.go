package dom

import "strings"

// AddTag wraps the first occurrence of word in each text node with a new
// element labelled tag. Words are compared case-insensitively and a single
// trailing ! . ; , or ? on the text is tolerated and kept inside the element.
// Later occurrences in the same text node are not wrapped.
func (t *Tree) AddTag(word, tag string) {
	if word == "" {
		return
	}
	addTag(&t.Root, word, tag)
}

func addTag(link **Node, word, tag string) {
	for *link != nil {
		n := *link
		if n.IsElement() {
			addTag(&n.FirstChild, word, tag)
			link = &n.NextSibling
			continue
		}
		head, tail := splitAtWord(n.Label, word, tag)
		if head == nil {
			link = &n.NextSibling
			continue
		}
		tail.NextSibling = n.NextSibling
		*link = head
		// Skip the new nodes: the suffix is not scanned again.
		link = &tail.NextSibling
	}
}

// splitAtWord looks for the first token of text matching word. On a match it
// returns the replacement chain prefix? -> <tag>token</tag> -> suffix? by its
// head and tail; otherwise both are nil.
func splitAtWord(text, word, tag string) (head, tail *Node) {
	tokens := strings.Split(text, " ")
	for i, token := range tokens {
		if !matchesWord(token, word) {
			continue
		}
		wrapper := NewElement(tag, NewText(token))
		head, tail = wrapper, wrapper
		if prefix := strings.Join(tokens[:i], " "); prefix != "" {
			head = NewText(prefix)
			head.NextSibling = wrapper
		}
		if suffix := strings.Join(tokens[i+1:], " "); suffix != "" {
			tail = NewText(suffix)
			wrapper.NextSibling = tail
		}
		return head, tail
	}
	return nil, nil
}

func matchesWord(token, word string) bool {
	if strings.EqualFold(token, word) {
		return true
	}
	if len(token) < 2 || !isTrailingPunctuation(token[len(token)-1]) {
		return false
	}
	return strings.EqualFold(token[:len(token)-1], word)
}

func isTrailingPunctuation(c byte) bool {
	switch c {
	case '!', '.', ';', ',', '?':
		return true
	}
	return false
}
