package plugins

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdpane/buffer"
	"github.com/iw2rmb/mdpane/command"
)

const indentWidth = 4

// Host is what a plugin needs from the editor it is installed into.
type Host interface {
	Buffer() *buffer.Buffer
	Commands() *command.Registry
	Logger() *zap.Logger
}

// paragraph is the focused block as seen by a handler.
type paragraph struct {
	tx    *buffer.Tx
	index int
	text  string
	caret int // rune offset
}

// caretByte returns the byte offset of the caret in text.
func (p paragraph) caretByte() int {
	n := 0
	for i := range p.text {
		if n == p.caret {
			return i
		}
		n++
	}
	return len(p.text)
}

func (p paragraph) atEnd() bool {
	return p.caret == utf8.RuneCountInString(p.text)
}

// replace sets the paragraph text and puts the caret at its end.
func (p paragraph) replace(text string) error {
	if err := p.tx.SetBlockText(p.index, text); err != nil {
		return err
	}
	p.tx.SelectEnd(p.index)
	return nil
}

// splitWithMarker splits the paragraph at the caret and starts the new
// paragraph with marker followed by the text that was after the caret.
func (p paragraph) splitWithMarker(marker string) error {
	at := p.caretByte()
	head, tail := p.text[:at], p.text[at:]
	if err := p.tx.SetBlockText(p.index, head); err != nil {
		return err
	}
	next, err := p.tx.InsertBlockAfter(p.index, marker+tail)
	if err != nil {
		return err
	}
	p.tx.SetCaret(buffer.Pos{Block: next, Offset: utf8.RuneCountInString(marker)})
	return nil
}

// shift prefixes or strips leading spaces and keeps the caret on the same
// character.
func (p paragraph) shift(delta int) error {
	text := p.text
	if delta > 0 {
		text = spaces(delta) + text
	} else {
		n := 0
		for n < -delta && n < len(text) && text[n] == ' ' {
			n++
		}
		text = text[n:]
		delta = -n
	}
	if err := p.tx.SetBlockText(p.index, text); err != nil {
		return err
	}
	p.tx.SetCaret(buffer.Pos{Block: p.index, Offset: max(0, p.caret+delta)})
	return nil
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// onParagraph runs fn in one transaction on the block holding a collapsed
// caret. Range selections are unhandled. A block lookup failure means the
// document has an unexpected shape; it is logged and reported as
// unhandled so that nothing crosses the dispatch boundary.
func onParagraph(h Host, name string, fn func(p paragraph) (bool, error)) (bool, error) {
	handled := false
	err := h.Buffer().UpdateTagged(name, func(tx *buffer.Tx) error {
		sel, ok := tx.Selection()
		if !ok || !sel.IsCollapsed() {
			return nil
		}
		i, err := tx.TopLevelBlock(sel.Focus)
		if err != nil {
			return err
		}
		handled, err = fn(paragraph{tx: tx, index: i, text: tx.BlockText(i), caret: sel.Focus.Offset})
		return err
	})
	if err != nil {
		logger := h.Logger()
		if errors.Is(err, buffer.ErrNoBlock) {
			logger.Warn("no enclosing block for caret", zap.String("handler", name), zap.Error(err))
		} else {
			logger.Error("plugin handler failed", zap.String("handler", name), zap.Error(err))
		}
		return false, nil
	}
	return handled, nil
}
