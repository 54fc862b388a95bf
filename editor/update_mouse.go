package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdpane/buffer"
)

const wheelDelta = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || m.prompting {
		return m, nil
	}
	reg, x, y := m.regionAt(msg.X, msg.Y)

	if isWheel(msg) {
		delta := wheelDelta
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -delta
		}
		switch reg {
		case regionMarkdown:
			if m.cfg.ScrollPolicy == ScrollAllowManual {
				m.viewport.SetYOffset(m.viewport.YOffset + delta)
			}
		case regionPreview:
			m.preview.SetYOffset(m.preview.YOffset + delta)
		}
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch reg {
		case regionToolbar:
			cmd := m.clickToolbar(x)
			return m, cmd
		case regionPreview:
			m.pane = PanePreview
			line := m.preview.YOffset + y
			m.selectPreviewLine(line)
			m.clickPreviewLine(line)
			m.rebuildContent()
		case regionMarkdown:
			m.pane = PaneMarkdown
			m.setPreviewContent()
			buf := m.comp.Buffer()
			p := m.screenToDocPos(x, y)
			if msg.Shift {
				anchor := buf.Cursor()
				if sel, ok := buf.Selection(); ok {
					anchor = sel.Anchor
				}
				m.mouseAnchor = anchor
				buf.SetSelection(buffer.Selection{Anchor: anchor, Focus: p})
			} else {
				m.mouseAnchor = p
				buf.SetCursor(p)
			}
			m.mouseDragging = true
		}

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampToMarkdown(msg.X, msg.Y-1)
		p := m.screenToDocPos(x, y)
		m.comp.Buffer().SetSelection(buffer.Selection{Anchor: m.mouseAnchor, Focus: p})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown)
}

func (m Model) clampToMarkdown(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
