package linesource

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never have a closing tag in HTML.
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Source: true, atom.Track: true,
	atom.Wbr: true,
}

// FromHTML tokenizes HTML into the line format. Attributes, comments and the
// doctype are dropped; each run of text becomes one line with its whitespace
// collapsed. Void and self-closing elements produce an open and a close line
// so that the result always nests.
func FromHTML(r io.Reader) ([]string, error) {
	var lines []string
	var open []string
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("tokenizing HTML: %w", err)
			}
			// Close anything the document left open.
			for i := len(open) - 1; i >= 0; i-- {
				lines = append(lines, "</"+open[i]+">")
			}
			return lines, nil
		case html.TextToken:
			text := strings.Join(strings.Fields(string(z.Text())), " ")
			if text != "" {
				lines = append(lines, text)
			}
		case html.StartTagToken:
			tok := z.Token()
			lines = append(lines, "<"+tok.Data+">")
			if voidElements[tok.DataAtom] {
				lines = append(lines, "</"+tok.Data+">")
			} else {
				open = append(open, tok.Data)
			}
		case html.SelfClosingTagToken:
			tok := z.Token()
			lines = append(lines, "<"+tok.Data+">", "</"+tok.Data+">")
		case html.EndTagToken:
			tok := z.Token()
			if voidElements[tok.DataAtom] {
				continue
			}
			// Close intervening elements the source forgot to close; a stray
			// end tag with no matching open element is dropped.
			for i := len(open) - 1; i >= 0; i-- {
				if open[i] != tok.Data {
					continue
				}
				for j := len(open) - 1; j >= i; j-- {
					lines = append(lines, "</"+open[j]+">")
				}
				open = open[:i]
				break
			}
		}
	}
}
