package buffer

type bufferSnapshot struct {
	blocks    []block
	sel       Selection
	selActive bool
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		blocks:    cloneBlocks(b.blocks),
		sel:       b.sel,
		selActive: b.selActive,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.blocks = cloneBlocks(s.blocks)
	if len(b.blocks) == 0 {
		b.blocks = []block{b.newBlock(nil)}
	}
	if !s.selActive {
		b.sel, b.selActive = Selection{}, false
		return
	}
	b.sel = Selection{Anchor: b.clampPos(s.sel.Anchor), Focus: b.clampPos(s.sel.Focus)}
	b.selActive = true
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 || b.tx != nil {
		return false
	}

	cur := b.snapshot()
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	_ = b.update(ChangeSourceHistory, "undo", true, func(tx *Tx) error {
		b.restore(prev)
		tx.markText()
		return nil
	})
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 || b.tx != nil {
		return false
	}

	cur := b.snapshot()
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	_ = b.update(ChangeSourceHistory, "redo", true, func(tx *Tx) error {
		b.restore(next)
		tx.markText()
		return nil
	})
	return true
}
