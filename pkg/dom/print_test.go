package dom

import (
	"bytes"
	"strings"
	"testing"
)

func TestPickPrintFunc(t *testing.T) {
	for _, format := range []string{"html", "JSON", "yaml", "AsciiTree", "DOT", "mermaid"} {
		if _, err := PickPrintFunc(format); err != nil {
			t.Errorf("PickPrintFunc(%q) failed: %v", format, err)
		}
	}
	if _, err := PickPrintFunc("xml"); err == nil {
		t.Errorf("Expected an error for an unknown format")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tree := mustBuild(t, "<div>\n<p>\n</p>\nsome \"quoted\" text\n</div>")
	var buf bytes.Buffer
	if err := PrintTreeJSON(tree, &buf, &PrintOptions{Indent: 2}); err != nil {
		t.Fatalf("PrintTreeJSON failed: %v", err)
	}
	back, err := ReadTreeJSON(&buf)
	if err != nil {
		t.Fatalf("ReadTreeJSON failed: %v", err)
	}
	if !tree.Equal(back) {
		t.Errorf("JSON round trip changed the tree:\n%s", back.Render())
	}
}

func TestReadTreeJSONRejectsBadKinds(t *testing.T) {
	for _, input := range []string{
		`[{"kind":"comment","label":"x"}]`,
		`[{"kind":"text","label":"x","children":[{"kind":"text","label":"y"}]}]`,
	} {
		if _, err := ReadTreeJSON(strings.NewReader(input)); err == nil {
			t.Errorf("Expected an error for %s", input)
		}
	}
}

func TestPrintTreeYAML(t *testing.T) {
	tree := mustBuild(t, "<p>\nhi\n</p>")
	var buf bytes.Buffer
	if err := PrintTreeYAML(tree, &buf, &PrintOptions{}); err != nil {
		t.Fatalf("PrintTreeYAML failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"kind: element", "label: p", "kind: text", "label: hi"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in YAML output:\n%s", want, out)
		}
	}
}

func TestPrintTreeAsciiTree(t *testing.T) {
	tree := mustBuild(t, "<p>\nhello there\n</p>")
	var buf bytes.Buffer
	if err := PrintTreeAsciiTree(tree, &buf, &PrintOptions{TrimText: 5}); err != nil {
		t.Fatalf("PrintTreeAsciiTree failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "p") || !strings.Contains(out, "hell…") {
		t.Errorf("Unexpected ASCII tree:\n%s", out)
	}
}

func TestPrintTreeDOT(t *testing.T) {
	tree := mustBuild(t, "<p>\nsay \"hi\"\n</p>")
	var buf bytes.Buffer
	if err := PrintTreeDOT(tree, &buf, &PrintOptions{}); err != nil {
		t.Fatalf("PrintTreeDOT failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("Expected a digraph, got:\n%s", out)
	}
	if !strings.Contains(out, `"node_1" -> "node_2"`) {
		t.Errorf("Expected an edge from the element to its text:\n%s", out)
	}
	if !strings.Contains(out, `say \"hi\"`) {
		t.Errorf("Expected escaped quotes:\n%s", out)
	}
}

func TestPrintTreeMermaid(t *testing.T) {
	tree := mustBuild(t, "<p>\nhi\n</p>")
	var buf bytes.Buffer
	if err := PrintTreeMermaid(tree, &buf, &PrintOptions{}); err != nil {
		t.Fatalf("PrintTreeMermaid failed: %v", err)
	}
	want := "graph TD\n  n1[\"p\"]\n  n2(\"hi\")\n  n1 --> n2\n"
	if got := buf.String(); got != want {
		t.Errorf("Got:\n%s\nWant:\n%s", got, want)
	}
}

func TestTrimText(t *testing.T) {
	if got := TrimText("abcdef", 4); got != "abc…" {
		t.Errorf("Got %q", got)
	}
	if got := TrimText("abcdef", 1); got != "a" {
		t.Errorf("Got %q", got)
	}
	if got := TrimText("héllo wörld", 5); got != "héll…" {
		t.Errorf("Got %q", got)
	}
	if got := TrimText("日本語", 3); got != "日本語" {
		t.Errorf("Got %q", got)
	}
	if got := TrimText("abc", 0); got != "abc" {
		t.Errorf("Got %q", got)
	}
}
