package preview

import (
	"regexp"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdpane/buffer"
)

var checkboxLineRE = regexp.MustCompile(`^(\s*(?:>\s*)*(?:[-*+]|\d+[.)])\s*\[)([xX ]?)(\].*)$`)

// Binder attaches click handlers to rendered checklist items. Binding is
// idempotent: an item that already has a handler is skipped, so Bind can
// run after every render pass.
type Binder struct {
	doc    *Document
	buf    *buffer.Buffer
	logger *zap.Logger

	handlers map[ItemID]func() error
}

func NewBinder(doc *Document, buf *buffer.Buffer, logger *zap.Logger) *Binder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Binder{doc: doc, buf: buf, logger: logger, handlers: make(map[ItemID]func() error)}
}

// Bind attaches handlers to the items of the current generation that have
// none, drops handlers of earlier generations, and returns how many items
// it bound.
func (b *Binder) Bind() int {
	gen := b.doc.Generation()
	for id := range b.handlers {
		if id.Generation != gen {
			delete(b.handlers, id)
		}
	}

	bound := 0
	for _, item := range b.doc.Items() {
		if _, ok := b.handlers[item.ID]; ok {
			continue
		}
		id := item.ID
		b.handlers[id] = func() error { return b.toggle(id) }
		bound++
	}
	return bound
}

func (b *Binder) Bound(id ItemID) bool {
	_, ok := b.handlers[id]
	return ok
}

// Click runs the handler of id. Items from an earlier generation are
// rejected with ErrStaleItem.
func (b *Binder) Click(id ItemID) error {
	if id.Generation != b.doc.Generation() {
		b.logger.Info("rejected stale checklist click",
			zap.Uint64("generation", id.Generation),
			zap.Uint64("current", b.doc.Generation()),
			zap.Int("line", id.Line))
		return errors.Wrapf(ErrStaleItem, "generation %d, current %d", id.Generation, b.doc.Generation())
	}
	h, ok := b.handlers[id]
	if !ok {
		return errors.Wrapf(ErrUnknownItem, "line %d", id.Line)
	}
	return h()
}

// toggle flips the item's state and rewrites the bracket of its source
// line in one buffer transaction. The primary selection is kept.
func (b *Binder) toggle(id ItemID) error {
	item, ok := b.doc.Item(id)
	if !ok {
		return errors.Wrapf(ErrUnknownItem, "line %d", id.Line)
	}
	checked := !item.Checked
	mark := " "
	if checked {
		mark = "x"
	}

	err := b.buf.UpdateTagged("checklist/click", func(tx *buffer.Tx) error {
		r, ok := tx.LineRange(id.Line)
		if !ok {
			return errors.Wrapf(ErrStaleItem, "line %d is gone", id.Line)
		}
		line := tx.TextInRange(r)
		m := checkboxLineRE.FindStringSubmatchIndex(line)
		if m == nil {
			return errors.Wrapf(ErrStaleItem, "line %d has no checkbox", id.Line)
		}

		start := r.Start.Offset + utf8.RuneCountInString(line[:m[4]])
		end := start + utf8.RuneCountInString(line[m[4]:m[5]])
		sel, hasSel := tx.Selection()
		tx.Apply(buffer.TextEdit{
			Range: buffer.Range{
				Start: buffer.Pos{Block: r.Start.Block, Offset: start},
				End:   buffer.Pos{Block: r.Start.Block, Offset: end},
			},
			Text: mark,
		})
		if hasSel {
			tx.SetSelection(sel)
		} else {
			tx.ClearSelection()
		}
		return nil
	})
	if err != nil {
		b.logger.Warn("checklist click not applied", zap.Int("line", id.Line), zap.Error(err))
		return err
	}
	item.Checked = checked
	return nil
}
