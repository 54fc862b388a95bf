package buffer

// RuneOffsetFromPos maps p to a rune offset into Text(). Blocks are
// separated by one '\n'. p is clamped first.
func (b *Buffer) RuneOffsetFromPos(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for i := 0; i < p.Block; i++ {
		off += len(b.blocks[i].text) + 1
	}
	return off + p.Offset
}

// PosFromRuneOffset maps a rune offset into Text() back to a position.
// Offsets past the end clamp to the document end. An offset that lands on
// a block separator maps to the end of the earlier block.
func (b *Buffer) PosFromRuneOffset(off int) Pos {
	if off < 0 {
		off = 0
	}
	for i, blk := range b.blocks {
		if off <= len(blk.text) {
			return Pos{Block: i, Offset: off}
		}
		off -= len(blk.text) + 1
	}
	last := len(b.blocks) - 1
	return Pos{Block: last, Offset: len(b.blocks[last].text)}
}
