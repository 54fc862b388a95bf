package buffer

import "github.com/iw2rmb/mdpane/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveBlock
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start (or doc start for MoveDoc)
	DirEnd  // block end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the focus
}

func (b *Buffer) Move(m Move) {
	_ = b.Update(func(tx *Tx) error {
		prev, _ := b.Selection()
		next := b.clampPos(b.moveCursor(prev.Focus, m))
		if m.Extend {
			tx.SetSelection(Selection{Anchor: prev.Anchor, Focus: next})
			return nil
		}
		tx.SetCaret(next)
		return nil
	})
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveBlock:
		return b.moveBlock(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	last := len(b.blocks) - 1

	switch dir {
	case DirLeft:
		if p.Block == 0 && p.Offset == 0 {
			return p
		}
		if p.Offset > 0 {
			n := grapheme.LastClusterLen(b.blocks[p.Block].text[:p.Offset])
			return Pos{Block: p.Block, Offset: p.Offset - n}
		}
		return Pos{Block: p.Block - 1, Offset: b.blockLen(p.Block - 1)}
	case DirRight:
		if p.Block == last && p.Offset == b.blockLen(last) {
			return p
		}
		if p.Offset < b.blockLen(p.Block) {
			n := grapheme.FirstClusterLen(b.blocks[p.Block].text[p.Offset:])
			return Pos{Block: p.Block, Offset: p.Offset + n}
		}
		return Pos{Block: p.Block + 1, Offset: 0}
	default:
		return b.moveBlock(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	text := b.blocks[p.Block].text

	switch dir {
	case DirLeft:
		return Pos{Block: p.Block, Offset: prevWordBoundary(text, p.Offset)}
	case DirRight:
		return Pos{Block: p.Block, Offset: nextWordBoundary(text, p.Offset)}
	default:
		return b.moveBlock(p, dir)
	}
}

func (b *Buffer) moveBlock(p Pos, dir MoveDir) Pos {
	last := len(b.blocks) - 1

	switch dir {
	case DirHome:
		return Pos{Block: p.Block, Offset: 0}
	case DirEnd:
		return Pos{Block: p.Block, Offset: b.blockLen(p.Block)}
	case DirUp:
		if p.Block == 0 {
			return Pos{Block: 0, Offset: 0}
		}
		nb := p.Block - 1
		return Pos{Block: nb, Offset: minInt(p.Offset, b.blockLen(nb))}
	case DirDown:
		if p.Block == last {
			return Pos{Block: last, Offset: b.blockLen(last)}
		}
		nb := p.Block + 1
		return Pos{Block: nb, Offset: minInt(p.Offset, b.blockLen(nb))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	last := len(b.blocks) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Block: last, Offset: b.blockLen(last)}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - the block edge is a hard boundary
func prevWordBoundary(text []rune, off int) int {
	i := clampInt(off, 0, len(text))
	for i > 0 && grapheme.IsSpaceRune(text[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpaceRune(text[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(text []rune, off int) int {
	i := clampInt(off, 0, len(text))
	for i < len(text) && grapheme.IsSpaceRune(text[i]) {
		i++
	}
	for i < len(text) && !grapheme.IsSpaceRune(text[i]) {
		i++
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
