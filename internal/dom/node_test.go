package dom

import "testing"

// TestAppendChildLinksSiblings demonstrates the forward/weak-back link
// topology: appending children builds a document-order singly-linked
// list, and each child's parent weak-reference resolves back to the
// node that appended it.
func TestAppendChildLinksSiblings(t *testing.T) {
	root := NewElement("div")
	a := NewElement("p")
	b := NewText("hello")

	root.AppendChild(a)
	root.AppendChild(b)

	if root.FirstChild() != a {
		t.Fatalf("FirstChild() = %v, want %v", root.FirstChild(), a)
	}
	if root.LastChild() != b {
		t.Fatalf("LastChild() = %v, want %v", root.LastChild(), b)
	}
	if a.NextSibling() != b {
		t.Fatalf("a.NextSibling() = %v, want %v", a.NextSibling(), b)
	}
	if b.PrevSibling() != a {
		t.Fatalf("b.PrevSibling() = %v, want %v", b.PrevSibling(), a)
	}
	if a.Parent() != root || b.Parent() != root {
		t.Fatalf("children do not resolve back to their parent")
	}
}

func TestKindForTagIsTotal(t *testing.T) {
	if KindForTag("p") != P {
		t.Fatalf("KindForTag(p) = %v, want P", KindForTag("p"))
	}
	if KindForTag("marquee") != Unknown {
		t.Fatalf("KindForTag(marquee) = %v, want Unknown", KindForTag("marquee"))
	}
}

func TestHasClass(t *testing.T) {
	n := NewElement("a")
	n.SetAttr("class", "hidden external")
	if !n.HasClass("hidden") || !n.HasClass("external") {
		t.Fatalf("HasClass did not find a present class token")
	}
	if n.HasClass("nope") {
		t.Fatalf("HasClass found a class token that isn't present")
	}
}
