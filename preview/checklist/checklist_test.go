package checklist

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

func parse(src string) (ast.Node, []byte) {
	md := goldmark.New(goldmark.WithExtensions(extension.TaskList, Extension))
	data := []byte(src)
	return md.Parser().Parse(text.NewReader(data)), data
}

func collect(root ast.Node) []*Item {
	var items []*Item
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if it, ok := n.(*Item); ok && entering {
			items = append(items, it)
		}
		return ast.WalkContinue, nil
	})
	return items
}

func TestParser_TopLevelLines(t *testing.T) {
	root, src := parse("- [ ] one\n* [x] two\n-[X] three")
	items := collect(root)
	if len(items) != 3 {
		t.Fatalf("items: got %d, want 3", len(items))
	}

	wantChecked := []bool{false, true, true}
	wantOffset := []int{0, 10, 20}
	for i, it := range items {
		if it.Checked != wantChecked[i] {
			t.Fatalf("item %d checked: got %v, want %v", i, it.Checked, wantChecked[i])
		}
		if it.Offset != wantOffset[i] {
			t.Fatalf("item %d offset: got %d, want %d", i, it.Offset, wantOffset[i])
		}
		if it.Parent().Kind() != ast.KindDocument {
			t.Fatalf("item %d parent: got %s", i, it.Parent().Kind())
		}
	}
	if got := string(items[0].Lines().Value(src)); got != "one" {
		t.Fatalf("item body: got %q, want %q", got, "one")
	}
}

func TestParser_TrimsTrailingSpace(t *testing.T) {
	root, src := parse("- [x] spaced  \t\n- [ ] next")
	items := collect(root)
	if len(items) != 2 {
		t.Fatalf("items: got %d, want 2", len(items))
	}
	if got := string(items[0].Lines().Value(src)); got != "spaced" {
		t.Fatalf("item body: got %q, want %q", got, "spaced")
	}
}

func TestTransformer_ReplacesTaskListItems(t *testing.T) {
	root, _ := parse("- plain\n- [x] task")
	items := collect(root)
	if len(items) != 1 {
		t.Fatalf("items: got %d, want 1", len(items))
	}
	it := items[0]
	if !it.Checked || it.Offset != 8 {
		t.Fatalf("item: got checked=%v offset=%d", it.Checked, it.Offset)
	}
	if it.Parent().Kind() != ast.KindList {
		t.Fatalf("parent: got %s, want List", it.Parent().Kind())
	}
	_ = ast.Walk(it, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n.Kind().String() == "TaskCheckBox" {
			t.Fatalf("task checkbox left in the tree")
		}
		return ast.WalkContinue, nil
	})
}

func TestParser_IgnoresPlainLines(t *testing.T) {
	for _, src := range []string{"- item", "- [] empty", "    - [ ] code", "-- [ ] dashes"} {
		root, _ := parse(src)
		if items := collect(root); len(items) != 0 {
			t.Fatalf("%q: got %d items, want 0", src, len(items))
		}
	}
}
