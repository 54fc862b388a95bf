package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdpane/buffer"
	"github.com/iw2rmb/mdpane/command"
	"github.com/iw2rmb/mdpane/composer"
	"github.com/iw2rmb/mdpane/plugins"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.prompting {
		return m.updatePrompt(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.SwitchPane):
		m.switchPane()
		return m, nil
	case key.Matches(msg, km.NextLanguage):
		m.cycleLanguage(1)
		return m, nil
	case key.Matches(msg, km.PrevLanguage):
		m.cycleLanguage(-1)
		return m, nil
	}

	if m.pane == PanePreview {
		return m.updatePreviewKey(msg), nil
	}

	buf := m.comp.Buffer()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Left):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.moveLine(-1, false)
	case key.Matches(msg, km.Down):
		m.moveLine(1, false)

	case key.Matches(msg, km.ShiftLeft):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.moveLine(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveLine(1, true)

	case key.Matches(msg, km.WordLeft):
		buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.moveLineEdge(false)
	case key.Matches(msg, km.End):
		m.moveLineEdge(true)

	case key.Matches(msg, km.Backspace):
		m.key(plugins.KeyBackspace)
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		m.key(plugins.KeyEnter)
	case key.Matches(msg, km.Tab):
		m.key(plugins.KeyTab)
	case key.Matches(msg, km.ShiftTab):
		m.key(plugins.KeyShiftTab)

	case key.Matches(msg, km.Undo):
		m.history(false)
	case key.Matches(msg, km.Redo):
		m.history(true)

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	case key.Matches(msg, km.Bold):
		m.press(composer.ButtonBold)
	case key.Matches(msg, km.Italic):
		m.press(composer.ButtonItalic)
	case key.Matches(msg, km.Strikethrough):
		m.press(composer.ButtonStrikethrough)
	case key.Matches(msg, km.Code):
		m.press(composer.ButtonCode)
	case key.Matches(msg, km.Underline):
		m.press(composer.ButtonUnderline)
	case key.Matches(msg, km.Quote):
		m.press(composer.ButtonQuote)
	case key.Matches(msg, km.UnorderedList):
		m.press(composer.ButtonUnorderedList)
	case key.Matches(msg, km.OrderedList):
		m.press(composer.ButtonOrderedList)
	case key.Matches(msg, km.CheckList):
		m.press(composer.ButtonCheckList)
	case key.Matches(msg, km.CodeBlock):
		m.press(composer.ButtonCodeBlock)
	case key.Matches(msg, km.Link):
		return m.openPrompt()

	default:
		if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				buf.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// history steps the undo stack back, or forward when redo is set.
func (m *Model) history(redo bool) {
	if m.cfg.ReadOnly {
		return
	}
	buf := m.comp.Buffer()
	if redo {
		_ = buf.Redo()
	} else {
		_ = buf.Undo()
	}
}

// key dispatches a key command through the composer so plugins can claim
// it before the editor default runs.
func (m *Model) key(cmd command.Command[struct{}]) {
	if m.cfg.ReadOnly {
		return
	}
	if _, err := m.comp.Key(cmd); err != nil {
		m.logger.Warn("key command failed", zap.String("command", cmd.Name()), zap.Error(err))
		m.setError(err)
	}
}

// press runs a toolbar button and reports the outcome in the status line.
func (m *Model) press(b composer.Button) tea.Cmd {
	if b == composer.ButtonLink {
		var cmd tea.Cmd
		*m, cmd = m.openPrompt()
		return cmd
	}
	if m.cfg.ReadOnly {
		return nil
	}
	handled, err := m.comp.Press(b)
	switch {
	case err != nil:
		m.setError(err)
	case !handled:
		m.setStatus(fmt.Sprintf("%s: nothing to apply here", b))
	default:
		m.clearStatus()
	}
	return nil
}

func (m *Model) switchPane() {
	if m.pane == PaneMarkdown {
		m.pane = PanePreview
		if m.previewSel < 0 && len(m.itemLines()) > 0 {
			m.previewSel = 0
		}
	} else {
		m.pane = PaneMarkdown
	}
	m.rebuildContent()
	m.setPreviewContent()
}

func (m *Model) cycleLanguage(delta int) {
	langs := plugins.Languages
	i := 0
	for j, l := range langs {
		if l == m.comp.Language() {
			i = j
			break
		}
	}
	next := langs[((i+delta)%len(langs)+len(langs))%len(langs)]
	if err := m.comp.SetLanguage(next); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("code block language: " + next)
}

// moveLine moves the cursor to the same rune column of the previous or
// next text line. Lines inside one block count separately.
func (m *Model) moveLine(delta int, extend bool) {
	buf := m.comp.Buffer()
	lines := splitDocLines(buf.Text())
	row, col := m.cursorRowCol(lines)

	next := row + delta
	switch {
	case next < 0:
		next, col = 0, 0
	case next >= len(lines):
		next = len(lines) - 1
		col = len([]rune(lines[next].text))
	default:
		col = minInt(col, len([]rune(lines[next].text)))
	}
	m.moveTo(buf.PosFromRuneOffset(lines[next].start+col), extend)
}

func (m *Model) moveLineEdge(end bool) {
	buf := m.comp.Buffer()
	lines := splitDocLines(buf.Text())
	row, _ := m.cursorRowCol(lines)
	col := 0
	if end {
		col = len([]rune(lines[row].text))
	}
	m.moveTo(buf.PosFromRuneOffset(lines[row].start+col), false)
}

func (m *Model) moveTo(p buffer.Pos, extend bool) {
	buf := m.comp.Buffer()
	if !extend {
		buf.SetCursor(p)
		return
	}
	anchor := buf.Cursor()
	if sel, ok := buf.Selection(); ok {
		anchor = sel.Anchor
	}
	buf.SetSelection(buffer.Selection{Anchor: anchor, Focus: p})
}

func (m Model) openPrompt() (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	m.prompting = true
	m.prompt.SetValue("")
	cmd := m.prompt.Focus()
	m.rebuildContent()
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.cfg.KeyMap.Cancel):
		m.closePrompt()
		return m, nil
	case msg.Type == tea.KeyEnter:
		url := m.prompt.Value()
		m.closePrompt()
		if _, err := m.comp.Link(url); err != nil {
			m.setError(err)
			return m, nil
		}
		m.clearStatus()
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.rebuildContent()
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		return
	}
	m.comp.Buffer().DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.logger.Warn("clipboard read failed", zap.Error(err))
		return
	}
	if s == "" {
		return
	}
	m.comp.Buffer().InsertText(normalizeNewlines(s))
}

func (m Model) selectedText() string {
	buf := m.comp.Buffer()
	r, ok := buf.SelectedRange()
	if !ok {
		return ""
	}
	var s string
	buf.Read(func(v buffer.View) {
		s = v.TextInRange(r)
	})
	return s
}

// normalizeNewlines converts newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
