package dom

import (
	"errors"
	"strings"
	"testing"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func mustBuild(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := Build(lines(src))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tree
}

const sampleDocument = `<html>
<body>
<p>
Hello, world.
<em>
really
</em>
</p>
<table>
<tr>
<td>
one
</td>
<td>
two
</td>
</tr>
</table>
</body>
</html>`

func TestBuildShape(t *testing.T) {
	tree := mustBuild(t, sampleDocument)

	if tree.Root == nil || tree.Root.Label != "html" || !tree.Root.IsElement() {
		t.Fatalf("Expected <html> root, got %+v", tree.Root)
	}
	if tree.Root.NextSibling != nil {
		t.Errorf("Root should have no siblings")
	}
	body := tree.Root.FirstChild
	children := body.Children()
	if len(children) != 2 || children[0].Label != "p" || children[1].Label != "table" {
		t.Fatalf("Unexpected body children: %v", children)
	}
	text := children[0].FirstChild
	if text.Kind != TextNode || text.Label != "Hello, world." {
		t.Errorf("Expected text node 'Hello, world.', got %v %q", text.Kind, text.Label)
	}
	if text.NextSibling.Label != "em" {
		t.Errorf("Expected <em> after the text, got %q", text.NextSibling.Label)
	}
}

func TestRoundTrip(t *testing.T) {
	tree := mustBuild(t, sampleDocument)
	want := sampleDocument + "\n"
	if got := tree.Render(); got != want {
		t.Errorf("Round trip mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
	got := tree.Lines()
	want2 := lines(sampleDocument)
	if len(got) != len(want2) {
		t.Fatalf("Expected %d lines, got %d", len(want2), len(got))
	}
	for i := range got {
		if got[i] != want2[i] {
			t.Errorf("Line %d: got %q, want %q", i+1, got[i], want2[i])
		}
	}
}

func TestRoundTripEmptyElement(t *testing.T) {
	src := "<div>\n<p>\n</p>\ntext\n</div>"
	tree := mustBuild(t, src)
	if got := tree.Render(); got != src+"\n" {
		t.Errorf("Got:\n%s", got)
	}
	p := tree.Root.FirstChild
	if !p.IsElement() || p.FirstChild != nil {
		t.Errorf("Expected empty <p> element, got %+v", p)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	tree, err := Build(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tree.Root != nil || tree.Render() != "" || tree.Lines() != nil {
		t.Errorf("Expected an empty tree")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		line  int
	}{
		{"close without open", []string{"</p>"}, 1},
		{"text above root", []string{"hello"}, 1},
		{"text after root closed", []string{"<p>", "x", "</p>", "y"}, 4},
		{"second root", []string{"<p>", "x", "</p>", "<p>"}, 4},
		{"extra close", []string{"<p>", "</p>", "</p>"}, 3},
		{"empty line", []string{"<p>", "", "</p>"}, 2},
		{"empty name", []string{"<p>", "<>", "</p>"}, 2},
		{"unclosed", []string{"<html>", "<p>", "x"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.input)
			if err == nil {
				t.Fatalf("Expected an error")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Expected ErrMalformedInput, got %v", err)
			}
			var mie *MalformedInputError
			if !errors.As(err, &mie) {
				t.Fatalf("Expected *MalformedInputError, got %T", err)
			}
			if mie.Line != tc.line {
				t.Errorf("Expected line %d, got %d (%v)", tc.line, mie.Line, err)
			}
		})
	}
}

func TestBuilderIncremental(t *testing.T) {
	b := NewBuilder()
	for _, line := range []string{"<ul>", "<li>", "a", "</li>", "</ul>"} {
		if err := b.AddLine(line); err != nil {
			t.Fatalf("AddLine(%q) failed: %v", line, err)
		}
	}
	tree, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if got := tree.Render(); got != "<ul>\n<li>\na\n</li>\n</ul>\n" {
		t.Errorf("Unexpected render: %q", got)
	}
}

func TestMarkerClassification(t *testing.T) {
	tests := []struct {
		line  string
		open  bool
		close bool
	}{
		{"<p>", true, false},
		{"</p>", false, true},
		{"</>", false, true},
		{"<", false, false},
		{"a < b > c", false, false},
		{"<p", false, false},
		{"x>", false, false},
	}
	for _, tc := range tests {
		if got := isOpenMarker(tc.line); got != tc.open {
			t.Errorf("isOpenMarker(%q) = %v", tc.line, got)
		}
		if got := isCloseMarker(tc.line); got != tc.close {
			t.Errorf("isCloseMarker(%q) = %v", tc.line, got)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tree := mustBuild(t, sampleDocument)
	copied := tree.Clone()
	if !tree.Equal(copied) {
		t.Fatalf("Clone should equal the original")
	}
	copied.ReplaceTag("p", "div")
	if tree.Equal(copied) {
		t.Errorf("Editing the clone changed the original")
	}
	if tree.Render() != sampleDocument+"\n" {
		t.Errorf("Original was modified")
	}
}
