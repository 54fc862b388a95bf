package preview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type itemState struct {
	Line    int
	Checked bool
}

func itemStates(d *Document) []itemState {
	var out []itemState
	for _, it := range d.Items() {
		out = append(out, itemState{Line: it.ID.Line, Checked: it.Checked})
	}
	return out
}

func TestDocument_ChecklistForms(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []itemState
	}{
		{name: "dash", src: "- [ ] one\n- [x] two", want: []itemState{{0, false}, {1, true}}},
		{name: "star", src: "* [x] star", want: []itemState{{0, true}}},
		{name: "tight", src: "-[ ] tight", want: []itemState{{0, false}}},
		{name: "after paragraph", src: "intro\n\n- [ ] later", want: []itemState{{2, false}}},
		{name: "inside list", src: "- plain\n- [x] task", want: []itemState{{1, true}}},
		{name: "nested", src: "- parent\n  - [ ] child", want: []itemState{{1, false}}},
		{name: "fenced", src: "```\n- [ ] not\n```"},
		{name: "indented code", src: "    - [ ] code"},
		{name: "no box", src: "- plain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDocument()
			if err := d.Rebuild(tc.src); err != nil {
				t.Fatalf("Rebuild: %v", err)
			}
			if diff := cmp.Diff(tc.want, itemStates(d)); diff != "" {
				t.Fatalf("items mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocument_ItemIDsCarryGeneration(t *testing.T) {
	d := NewDocument()
	if err := d.Rebuild("- [ ] a"); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	first := d.Items()[0].ID
	if first != (ItemID{Generation: 1, Line: 0}) {
		t.Fatalf("first id: got %+v", first)
	}

	if err := d.Rebuild("- [ ] a"); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if got := d.Generation(); got != 2 {
		t.Fatalf("generation: got %d, want 2", got)
	}
	if _, ok := d.Item(first); ok {
		t.Fatalf("item of generation 1 still resolves")
	}
	if _, ok := d.Item(ItemID{Generation: 2, Line: 0}); !ok {
		t.Fatalf("item of generation 2 does not resolve")
	}
}

func TestDocument_Blocks(t *testing.T) {
	d := NewDocument()
	src := "# Title\n\nSome *em* and **strong**\n\n```go\nx := 1\n```\n\n[site](https://example.com)"
	if err := d.Rebuild(src); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	var kinds []NodeKind
	for _, c := range d.Root().Children {
		kinds = append(kinds, c.Kind)
	}
	want := []NodeKind{KindHeading, KindParagraph, KindCodeBlock, KindParagraph}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("block kinds mismatch (-want +got):\n%s", diff)
	}

	children := d.Root().Children
	if h := children[0]; h.Level != 1 || h.PlainText() != "Title" {
		t.Fatalf("heading: got level %d text %q", h.Level, h.PlainText())
	}
	if got := children[1].PlainText(); got != "Some em and strong" {
		t.Fatalf("paragraph text: got %q", got)
	}

	var strong *Node
	children[1].Walk(func(n *Node) bool {
		if n.Kind == KindEmphasis && n.Level == 2 {
			strong = n
		}
		return true
	})
	if strong == nil || strong.PlainText() != "strong" {
		t.Fatalf("strong emphasis not found")
	}

	if code := children[2]; code.Language != "go" || code.Text != "x := 1" {
		t.Fatalf("code block: got %q %q", code.Language, code.Text)
	}

	link := children[3].Children[0]
	if link.Kind != KindLink || link.URL != "https://example.com" || link.PlainText() != "site" {
		t.Fatalf("link: got %s %q %q", link.Kind, link.URL, link.PlainText())
	}
}

func TestDocument_ChecklistGrouping(t *testing.T) {
	d := NewDocument()
	if err := d.Rebuild("- [ ] a\n- [x] b"); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	root := d.Root()
	if len(root.Children) != 1 || root.Children[0].Kind != KindChecklist {
		t.Fatalf("expected a single checklist, got %d children", len(root.Children))
	}
	if got := len(root.Children[0].Children); got != 2 {
		t.Fatalf("checklist entries: got %d, want 2", got)
	}
	if got := root.Children[0].Children[1].PlainText(); got != "b" {
		t.Fatalf("second entry text: got %q, want %q", got, "b")
	}
}

func TestDocument_Empty(t *testing.T) {
	d := NewDocument()
	if err := d.Rebuild(""); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if len(d.Root().Children) != 0 || len(d.Items()) != 0 {
		t.Fatalf("empty source produced content")
	}
}
