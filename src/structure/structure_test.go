package structure

import "testing"

func nodeAt(t *testing.T, children []Child, i int) *Node {
	t.Helper()
	n, ok := children[i].(*Node)
	if !ok {
		t.Fatalf("child %d is not a *Node: %#v", i, children[i])
	}
	return n
}

func TestParseLabelValue(t *testing.T) {
	text := "Domain Name: EXAMPLE.COM\nRegistrar: Example Registrar\n"
	tree := Parse(text)
	if len(tree) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(tree))
	}
	n0 := nodeAt(t, tree, 0)
	if n0.Label != "Domain Name" || n0.Value != "EXAMPLE.COM" {
		t.Errorf("node 0 = %+v", n0)
	}
}

func TestParseBracketLabel(t *testing.T) {
	tree := Parse("[Domain Name] example.com\n")
	n0 := nodeAt(t, tree, 0)
	if n0.Label != "Domain Name" || n0.Value != "example.com" {
		t.Errorf("got %+v", n0)
	}
}

func TestParseRejectsURLsAndTimes(t *testing.T) {
	// "12:34" and a bare URL must not be mis-parsed as label:value since
	// the remainder does not start with a space.
	tree := Parse("http://example.com/foo\n12:34\n")
	if len(tree) != 2 {
		t.Fatalf("expected 2 continuation nodes, got %d: %+v", len(tree), tree)
	}
	n0 := nodeAt(t, tree, 0)
	if n0.HasValue {
		t.Errorf("expected no value parsed from URL line, got %+v", n0)
	}
}

func TestParseIndentationNesting(t *testing.T) {
	text := "Registrant:\n    Name: Jane Doe\n    Street: 1 Infinite Loop\n"
	tree := Parse(text)
	if len(tree) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(tree))
	}
	top := nodeAt(t, tree, 0)
	if len(top.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(top.Children))
	}
	child0 := nodeAt(t, top.Children, 0)
	if child0.Label != "Name" || child0.Value != "Jane Doe" {
		t.Errorf("child 0 = %+v", child0)
	}
}

func TestParseSectionBreakCoalesced(t *testing.T) {
	text := "Domain Name: example.com\n\n\n\nRegistrar: Foo\n"
	tree := Parse(text)

	breaks := 0
	for _, c := range tree {
		if n, ok := c.(*Node); ok && n.Label == SectionBreak {
			breaks++
		}
	}
	if breaks != 1 {
		t.Errorf("expected exactly one coalesced SECTION_BREAK, got %d", breaks)
	}
}

func TestParseSkipsCommentsAndLegalMentions(t *testing.T) {
	text := "% this is a comment\nTERMS OF USE: blah\nDomain Name: example.com\n"
	tree := Parse(text)
	if len(tree) != 1 {
		t.Fatalf("expected comments and legal text dropped, got %d nodes: %+v", len(tree), tree)
	}
}

func TestParseContinuationLinesAttachToEnclosingNode(t *testing.T) {
	text := "Registrant Street: 1 Infinite Loop\nBuilding 2\n"
	tree := Parse(text)
	top := nodeAt(t, tree, 0)
	if len(top.Children) != 1 {
		t.Fatalf("expected one continuation child, got %d", len(top.Children))
	}
	s, ok := top.Children[0].(string)
	if !ok || s != "Building 2" {
		t.Errorf("expected continuation string, got %#v", top.Children[0])
	}
}

func TestParseIdempotentOnWhitespace(t *testing.T) {
	a := Parse("Domain Name: example.com\nStatus: active\n")
	b := Parse("Domain Name: example.com   \n\n\nStatus: active\n\n")

	flatten := func(cs []Child) []string {
		var out []string
		for _, c := range cs {
			if n, ok := c.(*Node); ok && n.Label != SectionBreak {
				out = append(out, n.Label+"="+n.Value)
			}
		}
		return out
	}

	fa, fb := flatten(a), flatten(b)
	if len(fa) != len(fb) {
		t.Fatalf("mismatched node counts: %v vs %v", fa, fb)
	}
	for i := range fa {
		if fa[i] != fb[i] {
			t.Errorf("node %d differs: %q vs %q", i, fa[i], fb[i])
		}
	}
}
