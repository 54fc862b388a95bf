package buffer

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNoBlock reports a position whose block does not exist. The document
	// always has at least one block, so this signals a broken caller.
	ErrNoBlock = errors.New("buffer: position has no enclosing block")

	// ErrNoSelection reports a transaction step that needs a selection while
	// the buffer has none.
	ErrNoSelection = errors.New("buffer: no selection")
)

type Options struct {
	HistoryLimit int // default: 1000
}

type block struct {
	id   uint64
	text []rune
}

// Buffer is the document state: blocks, selection, history and listeners.
type Buffer struct {
	blocks  []block
	nextID  uint64
	version uint64

	sel       Selection
	selActive bool

	opt  Options
	hist historyState

	tx        *Tx
	listeners []listener
	nextLID   int

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	b := &Buffer{
		opt:       opt,
		selActive: true,
	}
	b.blocks = b.splitBlocks(text)
	return b
}

func (b *Buffer) Text() string {
	return joinBlocks(b.blocks)
}

// Blocks returns a copy of the current top-level blocks.
func (b *Buffer) Blocks() []Block {
	out := make([]Block, len(b.blocks))
	for i, blk := range b.blocks {
		out[i] = Block{ID: blk.id, Text: string(blk.text)}
	}
	return out
}

func (b *Buffer) Version() uint64 { return b.version }

// Cursor returns the selection focus.
func (b *Buffer) Cursor() Pos { return b.sel.Focus }

// Selection returns the raw selection, which may be collapsed.
func (b *Buffer) Selection() (Selection, bool) {
	if !b.selActive {
		return Selection{}, false
	}
	return b.sel, true
}

// SelectedRange returns the normalized selection when it spans text.
func (b *Buffer) SelectedRange() (Range, bool) {
	if !b.selActive || b.sel.IsCollapsed() {
		return Range{}, false
	}
	return b.sel.Range(), true
}

func (b *Buffer) SetCursor(p Pos) {
	_ = b.Update(func(tx *Tx) error {
		tx.SetCaret(p)
		return nil
	})
}

func (b *Buffer) SetSelection(s Selection) {
	_ = b.Update(func(tx *Tx) error {
		tx.SetSelection(s)
		return nil
	})
}

// ClearSelection drops the selection entirely (no caret).
func (b *Buffer) ClearSelection() {
	_ = b.Update(func(tx *Tx) error {
		tx.ClearSelection()
		return nil
	})
}

func (b *Buffer) blockLen(i int) int {
	if i < 0 || i >= len(b.blocks) {
		return 0
	}
	return len(b.blocks[i].text)
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.blocks), b.blockLen)
}

func (b *Buffer) newBlock(text []rune) block {
	b.nextID++
	return block{id: b.nextID, text: text}
}

func (b *Buffer) splitBlocks(text string) []block {
	parts := strings.Split(text, "\n")
	out := make([]block, 0, len(parts))
	for _, s := range parts {
		out = append(out, b.newBlock([]rune(s)))
	}
	if len(out) == 0 {
		out = append(out, b.newBlock(nil))
	}
	return out
}

func joinBlocks(blocks []block) string {
	var sb strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(blk.text))
	}
	return sb.String()
}

func cloneBlocks(in []block) []block {
	out := make([]block, len(in))
	for i, blk := range in {
		out[i] = block{id: blk.id, text: append([]rune(nil), blk.text...)}
	}
	return out
}
