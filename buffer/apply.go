package buffer

// Apply applies a sequence of text edits in one transaction. Each edit's
// range is interpreted against the buffer state at the time that edit is
// applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - The caret moves to the end of the last effective edit.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}
	_ = b.Update(func(tx *Tx) error {
		tx.Apply(edits...)
		return nil
	})
}
