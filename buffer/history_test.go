package buffer

import "testing"

func TestUndoRedo_RestoresTextAndSelection(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Offset: 2})
	b.InsertText("c")

	if !b.CanUndo() {
		t.Fatalf("expected undo entry")
	}
	if !b.Undo() {
		t.Fatalf("undo returned false")
	}
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("after undo text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Offset: 2}); got != want {
		t.Fatalf("after undo cursor=%v, want %v", got, want)
	}

	if !b.Redo() {
		t.Fatalf("redo returned false")
	}
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("after redo text=%q, want %q", got, want)
	}
	if b.CanRedo() {
		t.Fatalf("redo stack should be empty")
	}
}

func TestUndo_SelectionOnlyChangesAreNotRecorded(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Offset: 1})
	b.SetCursor(Pos{Offset: 2})
	if b.CanUndo() {
		t.Fatalf("selection moves must not create undo entries")
	}
}

func TestUndo_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected redo entry")
	}
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("new edit must clear redo")
	}
}

func TestUndo_HistoryLimitDropsOldest(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	b.Undo()
	b.Undo()
	if b.Undo() {
		t.Fatalf("expected history to be exhausted")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestUndo_ReportsHistorySource(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")

	var got Change
	b.OnUpdate(func(ch Change) { got = ch })
	b.Undo()
	if got.Source != ChangeSourceHistory || got.Tag != "undo" {
		t.Fatalf("change=%+v, want history/undo", got)
	}
	if b.CanUndo() {
		t.Fatalf("undo must not push onto the undo stack")
	}
}

func TestUndo_TransactionIsOneStep(t *testing.T) {
	b := New("x", Options{})
	_ = b.Update(func(tx *Tx) error {
		if err := tx.SetBlockText(0, "- x"); err != nil {
			return err
		}
		_, err := tx.InsertBlockAfter(0, "- ")
		return err
	})
	b.Undo()
	if got, want := b.Text(), "x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
