package buffer

import "github.com/iw2rmb/mdpane/internal/grapheme"

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	_ = b.Update(func(tx *Tx) error {
		if !b.selActive {
			tx.SetCaret(b.sel.Focus)
		}
		return tx.InsertText(s)
	})
}

// InsertNewline splits the focused block at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: the selection, else the
// grapheme before the caret, else the break with the previous block.
func (b *Buffer) DeleteBackward() {
	_ = b.Update(func(tx *Tx) error {
		if r, ok := b.SelectedRange(); ok {
			tx.replaceRange(r, "")
			tx.SetCaret(r.Start)
			return nil
		}
		p := b.sel.Focus
		if p.Block == 0 && p.Offset == 0 {
			return nil
		}
		var start Pos
		if p.Offset > 0 {
			n := grapheme.LastClusterLen(b.blocks[p.Block].text[:p.Offset])
			start = Pos{Block: p.Block, Offset: p.Offset - n}
		} else {
			start = Pos{Block: p.Block - 1, Offset: b.blockLen(p.Block - 1)}
		}
		tx.replaceRange(Range{Start: start, End: p}, "")
		tx.SetCaret(start)
		return nil
	})
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	_ = b.Update(func(tx *Tx) error {
		if r, ok := b.SelectedRange(); ok {
			tx.replaceRange(r, "")
			tx.SetCaret(r.Start)
			return nil
		}
		p := b.sel.Focus
		last := len(b.blocks) - 1
		if p.Block == last && p.Offset == b.blockLen(last) {
			return nil
		}
		var end Pos
		if p.Offset < b.blockLen(p.Block) {
			n := grapheme.FirstClusterLen(b.blocks[p.Block].text[p.Offset:])
			end = Pos{Block: p.Block, Offset: p.Offset + n}
		} else {
			end = Pos{Block: p.Block + 1, Offset: 0}
		}
		tx.replaceRange(Range{Start: p, End: end}, "")
		tx.SetCaret(p)
		return nil
	})
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.SelectedRange()
	if !ok {
		return
	}
	_ = b.Update(func(tx *Tx) error {
		tx.replaceRange(r, "")
		tx.SetCaret(r.Start)
		return nil
	})
}

// SetText replaces the whole document in one transaction.
func (b *Buffer) SetText(text string) {
	_ = b.Update(func(tx *Tx) error {
		tx.SetText(text)
		return nil
	})
}
