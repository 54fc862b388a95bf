package buffer

import "testing"

func TestInsertText_ReplacesSelection(t *testing.T) {
	b := New("hello world", Options{})
	b.SetSelection(Selection{Anchor: Pos{Offset: 6}, Focus: Pos{Offset: 11}})
	b.InsertText("there")

	if got, want := b.Text(), "hello there"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Offset: 11}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestInsertNewline_SplitsBlockAndKeepsID(t *testing.T) {
	b := New("abcd", Options{})
	id := b.Blocks()[0].ID
	b.SetCursor(Pos{Offset: 2})
	b.InsertNewline()

	blocks := b.Blocks()
	if got, want := b.Text(), "ab\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if blocks[0].ID != id {
		t.Fatalf("first block id changed: %d -> %d", id, blocks[0].ID)
	}
	if got, want := b.Cursor(), (Pos{Block: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDeleteBackward_RemovesWholeGraphemeCluster(t *testing.T) {
	b := New("xe\u0301", Options{})
	b.SetCursor(Pos{Offset: 3})
	b.DeleteBackward()

	if got, want := b.Text(), "x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Offset: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDeleteBackward_JoinsBlocksAtStart(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Block: 1})
	b.DeleteBackward()

	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Offset: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDeleteBackward_AtDocumentStartIsNoop(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()
	b.DeleteBackward()
	if b.Version() != v || b.Text() != "ab" {
		t.Fatalf("expected no change, got %q v=%d", b.Text(), b.Version())
	}
}

func TestDeleteForward_JoinsNextBlockAtEnd(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Offset: 2})
	b.DeleteForward()

	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Offset: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDeleteSelection_AcrossBlocks(t *testing.T) {
	b := New("one\ntwo\nthree", Options{})
	b.SetSelection(Selection{Anchor: Pos{Block: 2, Offset: 2}, Focus: Pos{Offset: 1}})
	b.DeleteSelection()

	if got, want := b.Text(), "oree"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Offset: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestApply_SequentialEdits(t *testing.T) {
	b := New("word", Options{})
	b.Apply(
		TextEdit{Range: Range{Start: Pos{Offset: 4}, End: Pos{Offset: 4}}, Text: "**"},
		TextEdit{Range: Range{Start: Pos{}, End: Pos{}}, Text: "**"},
	)
	if got, want := b.Text(), "**word**"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Offset: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestApply_NoEffectiveEditKeepsVersion(t *testing.T) {
	b := New("same", Options{})
	v := b.Version()
	b.Apply(TextEdit{Range: Range{Start: Pos{}, End: Pos{Offset: 4}}, Text: "same"})
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}
