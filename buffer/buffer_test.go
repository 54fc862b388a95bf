package buffer

import "testing"

func TestNew_SplitsParagraphsPerLine(t *testing.T) {
	b := New("a\nbc\n", Options{})
	blocks := b.Blocks()
	if got, want := len(blocks), 3; got != want {
		t.Fatalf("blocks=%d, want %d", got, want)
	}
	if got, want := blocks[1].Text, "bc"; got != want {
		t.Fatalf("block[1]=%q, want %q", got, want)
	}
	if blocks[0].ID == blocks[1].ID || blocks[1].ID == blocks[2].ID {
		t.Fatalf("block ids must be distinct: %v", blocks)
	}
	if got, want := b.Text(), "a\nbc\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestNew_StartsWithCaretAtDocumentStart(t *testing.T) {
	b := New("hello", Options{})
	sel, ok := b.Selection()
	if !ok {
		t.Fatalf("expected a selection")
	}
	if !sel.IsCollapsed() || sel.Focus != (Pos{}) {
		t.Fatalf("selection=%v, want caret at origin", sel)
	}
	if b.Version() != 0 {
		t.Fatalf("version=%d, want 0", b.Version())
	}
}

func TestSetSelection_ClampsAndBumpsVersionOnce(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetSelection(Selection{Anchor: Pos{Block: -1, Offset: -1}, Focus: Pos{Block: 9, Offset: 9}})

	sel, _ := b.Selection()
	if got, want := sel.Anchor, (Pos{}); got != want {
		t.Fatalf("anchor=%v, want %v", got, want)
	}
	if got, want := sel.Focus, (Pos{Block: 1, Offset: 2}); got != want {
		t.Fatalf("focus=%v, want %v", got, want)
	}
	if got := b.Version(); got != 1 {
		t.Fatalf("version=%d, want 1", got)
	}

	b.SetSelection(sel)
	if got := b.Version(); got != 1 {
		t.Fatalf("version after no-op=%d, want 1", got)
	}
}

func TestSelectedRange_NormalizesBackwardSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Selection{Anchor: Pos{Offset: 4}, Focus: Pos{Offset: 1}})

	r, ok := b.SelectedRange()
	if !ok {
		t.Fatalf("expected range")
	}
	if r.Start.Offset != 1 || r.End.Offset != 4 {
		t.Fatalf("range=%v, want [1,4)", r)
	}
	if got := b.Cursor(); got != (Pos{Offset: 1}) {
		t.Fatalf("cursor=%v, want focus", got)
	}
}

func TestClearSelection_RemovesCaret(t *testing.T) {
	b := New("x", Options{})
	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected no selection")
	}
	if _, ok := b.SelectedRange(); ok {
		t.Fatalf("expected no range")
	}
}

func TestRuneOffsetConversions(t *testing.T) {
	b := New("ab\n\ncde", Options{})
	cases := []struct {
		pos Pos
		off int
	}{
		{pos: Pos{Block: 0, Offset: 0}, off: 0},
		{pos: Pos{Block: 0, Offset: 2}, off: 2},
		{pos: Pos{Block: 1, Offset: 0}, off: 3},
		{pos: Pos{Block: 2, Offset: 1}, off: 5},
		{pos: Pos{Block: 2, Offset: 3}, off: 7},
	}
	for _, tc := range cases {
		if got := b.RuneOffsetFromPos(tc.pos); got != tc.off {
			t.Fatalf("RuneOffsetFromPos(%v): got %d, want %d", tc.pos, got, tc.off)
		}
		if got := b.PosFromRuneOffset(tc.off); got != tc.pos {
			t.Fatalf("PosFromRuneOffset(%d): got %v, want %v", tc.off, got, tc.pos)
		}
	}
	if got, want := b.PosFromRuneOffset(99), (Pos{Block: 2, Offset: 3}); got != want {
		t.Fatalf("clamped pos=%v, want %v", got, want)
	}
}
