package buffer

import (
	"strings"

	"github.com/pkg/errors"
)

// View is a read-only snapshot handle, valid only inside Read or Update.
type View struct {
	b *Buffer
}

// Tx is a mutation handle, valid only inside Update.
type Tx struct {
	View

	source ChangeSource
	tag    string

	textChanged bool
	noHistory   bool
}

// Read runs fn against the current state without allowing mutation.
func (b *Buffer) Read(fn func(v View)) {
	fn(View{b: b})
}

// Update runs fn as one transaction. Nested calls join the outer
// transaction. If fn returns an error or panics, the buffer is restored to
// its state before the transaction and no listener fires.
func (b *Buffer) Update(fn func(tx *Tx) error) error {
	return b.update(ChangeSourceLocal, "", false, fn)
}

// UpdateTagged is Update with a tag that listeners see in Change.Tag.
func (b *Buffer) UpdateTagged(tag string, fn func(tx *Tx) error) error {
	return b.update(ChangeSourceLocal, tag, false, fn)
}

func (b *Buffer) update(source ChangeSource, tag string, noHistory bool, fn func(tx *Tx) error) (err error) {
	if b.tx != nil {
		return fn(b.tx)
	}

	prev := b.snapshot()
	prevVersion := b.version
	change := b.beginChange(source, tag)
	tx := &Tx{View: View{b: b}, source: source, tag: tag, noHistory: noHistory}
	b.tx = tx

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("buffer: transaction panicked: %v", r)
			}
		}()
		err = fn(tx)
	}()
	b.tx = nil

	if err != nil {
		b.restore(prev)
		b.version = prevVersion
		return err
	}
	if b.version == prevVersion {
		return nil
	}
	if tx.textChanged && !tx.noHistory {
		b.recordUndo(prev)
	}
	b.commitChange(change, tx.textChanged)
	b.notify(b.lastChange)
	return nil
}

func (v View) Text() string { return v.b.Text() }

func (v View) BlockCount() int { return len(v.b.blocks) }

// BlockText returns the flattened text of block i, or "" when out of range.
func (v View) BlockText(i int) string {
	if i < 0 || i >= len(v.b.blocks) {
		return ""
	}
	return string(v.b.blocks[i].text)
}

func (v View) BlockID(i int) uint64 {
	if i < 0 || i >= len(v.b.blocks) {
		return 0
	}
	return v.b.blocks[i].id
}

func (v View) Selection() (Selection, bool) { return v.b.Selection() }

// TopLevelBlock returns the index of the block enclosing p.
func (v View) TopLevelBlock(p Pos) (int, error) {
	if p.Block < 0 || p.Block >= len(v.b.blocks) {
		return 0, errors.Wrapf(ErrNoBlock, "block %d of %d", p.Block, len(v.b.blocks))
	}
	return p.Block, nil
}

// PreviousBlock returns the index of the sibling before block i.
func (v View) PreviousBlock(i int) (int, bool) {
	if i <= 0 || i > len(v.b.blocks) {
		return 0, false
	}
	return i - 1, true
}

// TextInRange returns the text covered by r; blocks are joined by '\n'.
func (v View) TextInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, len(v.b.blocks), v.b.blockLen))
	return textForBlocksRange(v.b.blocks, r)
}

// LineRange maps a 0-based line of Text() to its range inside a block.
func (v View) LineRange(line int) (Range, bool) {
	if line < 0 {
		return Range{}, false
	}
	n := 0
	for i, blk := range v.b.blocks {
		start := 0
		for j, r := range blk.text {
			if r != '\n' {
				continue
			}
			if n == line {
				return Range{Start: Pos{Block: i, Offset: start}, End: Pos{Block: i, Offset: j}}, true
			}
			n++
			start = j + 1
		}
		if n == line {
			return Range{Start: Pos{Block: i, Offset: start}, End: Pos{Block: i, Offset: len(blk.text)}}, true
		}
		n++
	}
	return Range{}, false
}

func (tx *Tx) SetSelection(s Selection) {
	b := tx.b
	next := Selection{Anchor: b.clampPos(s.Anchor), Focus: b.clampPos(s.Focus)}
	if b.selActive && b.sel == next {
		return
	}
	b.sel = next
	b.selActive = true
	b.version++
}

func (tx *Tx) SetCaret(p Pos) {
	tx.SetSelection(Caret(p))
}

func (tx *Tx) ClearSelection() {
	b := tx.b
	if !b.selActive {
		return
	}
	b.selActive = false
	b.sel = Selection{}
	b.version++
}

// SelectEnd places the caret at the end of block i.
func (tx *Tx) SelectEnd(i int) {
	tx.SetCaret(Pos{Block: i, Offset: tx.b.blockLen(i)})
}

// SetBlockText replaces the whole text of block i, keeping the block id.
func (tx *Tx) SetBlockText(i int, text string) error {
	b := tx.b
	if i < 0 || i >= len(b.blocks) {
		return errors.Wrapf(ErrNoBlock, "set text of block %d", i)
	}
	if string(b.blocks[i].text) == text {
		return nil
	}
	b.blocks[i].text = []rune(text)
	tx.markText()
	if b.selActive {
		tx.SetSelection(b.sel)
	}
	return nil
}

// InsertBlockAfter inserts a new block after block i and returns its index.
func (tx *Tx) InsertBlockAfter(i int, text string) (int, error) {
	b := tx.b
	if i < -1 || i >= len(b.blocks) {
		return 0, errors.Wrapf(ErrNoBlock, "insert after block %d", i)
	}
	at := i + 1
	out := make([]block, 0, len(b.blocks)+1)
	out = append(out, b.blocks[:at]...)
	out = append(out, b.newBlock([]rune(text)))
	out = append(out, b.blocks[at:]...)
	b.blocks = out
	if b.selActive {
		b.sel = Selection{Anchor: shiftAfterInsert(b.sel.Anchor, at), Focus: shiftAfterInsert(b.sel.Focus, at)}
	}
	tx.markText()
	return at, nil
}

// RemoveBlock removes block i. The last remaining block is emptied instead.
func (tx *Tx) RemoveBlock(i int) error {
	b := tx.b
	if i < 0 || i >= len(b.blocks) {
		return errors.Wrapf(ErrNoBlock, "remove block %d", i)
	}
	if len(b.blocks) == 1 {
		return tx.SetBlockText(0, "")
	}
	prevLen := 0
	if i > 0 {
		prevLen = len(b.blocks[i-1].text)
	}
	b.blocks = append(b.blocks[:i:i], b.blocks[i+1:]...)
	if b.selActive {
		b.sel = Selection{
			Anchor: shiftAfterRemove(b.sel.Anchor, i, prevLen),
			Focus:  shiftAfterRemove(b.sel.Focus, i, prevLen),
		}
	}
	tx.markText()
	return nil
}

// InsertText replaces the selection with s. Each '\n' in s starts a new
// block. The caret ends after the inserted text.
func (tx *Tx) InsertText(s string) error {
	b := tx.b
	if !b.selActive {
		return ErrNoSelection
	}
	next, changed := tx.replaceRange(b.sel.Range(), s)
	if !changed {
		return nil
	}
	tx.SetCaret(next)
	return nil
}

// SplitBlock deletes the selected text and splits the focused block at the
// caret. The caret moves to the start of the new block.
func (tx *Tx) SplitBlock() error {
	return tx.InsertText("\n")
}

// Apply applies edits in order. Each edit's range is interpreted against the
// state left by the previous edit. The caret moves to the end of the last
// effective edit.
func (tx *Tx) Apply(edits ...TextEdit) {
	last, applied := Pos{}, false
	for _, e := range edits {
		next, changed := tx.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		last, applied = next, true
	}
	if applied {
		tx.SetCaret(last)
	}
}

// SetText replaces the whole document. The caret keeps its rune offset.
func (tx *Tx) SetText(text string) {
	b := tx.b
	if b.Text() == text {
		return
	}
	off := -1
	if b.selActive {
		off = b.RuneOffsetFromPos(b.sel.Focus)
	}
	b.blocks = b.splitBlocks(text)
	tx.markText()
	if off >= 0 {
		tx.SetCaret(b.PosFromRuneOffset(off))
	}
}

func (tx *Tx) markText() {
	tx.textChanged = true
	tx.b.version++
}

func (tx *Tx) replaceRange(r Range, text string) (Pos, bool) {
	b := tx.b
	r = NormalizeRange(ClampRange(r, len(b.blocks), b.blockLen))
	if r.IsEmpty() && text == "" {
		return r.Start, false
	}
	if textForBlocksRange(b.blocks, r) == text {
		return Pos{}, false
	}

	startBlk, endBlk := r.Start.Block, r.End.Block
	prefix := append([]rune(nil), b.blocks[startBlk].text[:r.Start.Offset]...)
	suffix := append([]rune(nil), b.blocks[endBlk].text[r.End.Offset:]...)

	parts := strings.Split(text, "\n")
	repl := make([]block, 0, len(parts))
	var next Pos
	if len(parts) == 1 {
		ins := []rune(parts[0])
		line := make([]rune, 0, len(prefix)+len(ins)+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins...)
		line = append(line, suffix...)
		repl = append(repl, block{id: b.blocks[startBlk].id, text: line})
		next = Pos{Block: startBlk, Offset: len(prefix) + len(ins)}
	} else {
		first := append(prefix, []rune(parts[0])...)
		repl = append(repl, block{id: b.blocks[startBlk].id, text: first})
		for _, p := range parts[1 : len(parts)-1] {
			repl = append(repl, b.newBlock([]rune(p)))
		}
		lastPart := []rune(parts[len(parts)-1])
		repl = append(repl, b.newBlock(append(append([]rune(nil), lastPart...), suffix...)))
		next = Pos{Block: startBlk + len(parts) - 1, Offset: len(lastPart)}
	}

	out := make([]block, 0, len(b.blocks)-(endBlk-startBlk)+len(repl))
	out = append(out, b.blocks[:startBlk]...)
	out = append(out, repl...)
	out = append(out, b.blocks[endBlk+1:]...)
	b.blocks = out
	tx.markText()
	if b.selActive {
		b.sel = Selection{Anchor: b.clampPos(b.sel.Anchor), Focus: b.clampPos(b.sel.Focus)}
	}
	return next, true
}

func shiftAfterInsert(p Pos, at int) Pos {
	if p.Block >= at {
		p.Block++
	}
	return p
}

func shiftAfterRemove(p Pos, removed, prevLen int) Pos {
	switch {
	case p.Block > removed:
		p.Block--
	case p.Block == removed && removed > 0:
		p = Pos{Block: removed - 1, Offset: prevLen}
	case p.Block == removed:
		p = Pos{Block: 0, Offset: 0}
	}
	return p
}

func textForBlocksRange(blocks []block, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Block == r.End.Block {
		return string(blocks[r.Start.Block].text[r.Start.Offset:r.End.Offset])
	}

	var sb strings.Builder
	for i := r.Start.Block; i <= r.End.Block; i++ {
		if i > r.Start.Block {
			sb.WriteByte('\n')
		}
		from, to := 0, len(blocks[i].text)
		if i == r.Start.Block {
			from = r.Start.Offset
		}
		if i == r.End.Block {
			to = r.End.Offset
		}
		sb.WriteString(string(blocks[i].text[from:to]))
	}
	return sb.String()
}
