package format

import (
	"strings"

	"github.com/iw2rmb/mdpane/buffer"
)

// Toggle applies ToggleSelected to a range selection, or ToggleAtCaret to
// the focused block when the selection is a caret. A toggled range stays
// selected so a second Toggle undoes the first. It reports false when there
// was nothing to act on.
func Toggle(b *buffer.Buffer, markers string) (bool, error) {
	if markers == "" {
		return false, nil
	}
	handled := false
	err := b.Update(func(tx *buffer.Tx) error {
		sel, ok := tx.Selection()
		if !ok {
			return nil
		}

		if !sel.IsCollapsed() {
			r := sel.Range()
			if err := tx.InsertText(ToggleSelected(tx.TextInRange(r), markers)); err != nil {
				return err
			}
			end, _ := tx.Selection()
			tx.SetSelection(buffer.Selection{Anchor: r.Start, Focus: end.Focus})
			handled = true
			return nil
		}

		i, err := tx.TopLevelBlock(sel.Focus)
		if err != nil {
			return err
		}
		next, caret, ok := ToggleAtCaret(tx.BlockText(i), sel.Focus.Offset, markers)
		if !ok {
			return nil
		}
		if err := tx.SetBlockText(i, next); err != nil {
			return err
		}
		tx.SetCaret(buffer.Pos{Block: i, Offset: caret})
		handled = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return handled, nil
}

// Link replaces the selected text with a Markdown link to url. The caret
// ends after the link.
func Link(b *buffer.Buffer, url string) error {
	return b.Update(func(tx *buffer.Tx) error {
		sel, ok := tx.Selection()
		if !ok || sel.IsCollapsed() {
			return ErrEmptySelection
		}
		link, err := LinkText(tx.TextInRange(sel.Range()), strings.TrimSpace(url))
		if err != nil {
			return err
		}
		return tx.InsertText(link)
	})
}

// Quote toggles the "> " prefix on the selected lines and keeps the result
// selected.
func Quote(b *buffer.Buffer) error {
	return b.Update(func(tx *buffer.Tx) error {
		sel, ok := tx.Selection()
		if !ok || sel.IsCollapsed() {
			return ErrEmptySelection
		}
		r := sel.Range()
		text := tx.TextInRange(r)
		if strings.TrimSpace(text) == "" {
			return ErrBlankText
		}
		if err := tx.InsertText(QuoteText(text)); err != nil {
			return err
		}
		end, _ := tx.Selection()
		tx.SetSelection(buffer.Selection{Anchor: r.Start, Focus: end.Focus})
		return nil
	})
}
