package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// rebuildPreview re-renders the preview pane after the preview document
// was rebuilt, or always when force is set.
func (m *Model) rebuildPreview(force bool) {
	doc := m.comp.Preview().Document()
	if !force && doc.Generation() == m.lastGeneration {
		return
	}
	m.lastGeneration = doc.Generation()
	m.rendered = m.renderer.Render(doc)
	if n := len(m.itemLines()); m.previewSel >= n {
		m.previewSel = n - 1
	}
	m.setPreviewContent()
}

func (m *Model) setPreviewContent() {
	sel := -1
	if m.focused && m.pane == PanePreview {
		sel = m.selectedPreviewLine()
	}
	lines := make([]string, len(m.rendered.Lines))
	for i, l := range m.rendered.Lines {
		if i == sel {
			l = m.cfg.Style.PreviewSelected.Render(ansi.Strip(l))
		}
		if m.preview.Width > 0 {
			l = ansi.Truncate(l, m.preview.Width, "")
		}
		lines[i] = l
	}
	m.preview.SetContent(strings.Join(lines, "\n"))
}

// itemLines returns the preview lines holding checklist items, top to
// bottom.
func (m *Model) itemLines() []int {
	out := make([]int, 0, len(m.rendered.Items))
	for line := range m.rendered.Items {
		out = append(out, line)
	}
	sort.Ints(out)
	return out
}

func (m *Model) selectedPreviewLine() int {
	lines := m.itemLines()
	if m.previewSel < 0 || m.previewSel >= len(lines) {
		return -1
	}
	return lines[m.previewSel]
}

func (m *Model) selectPreviewLine(line int) {
	for i, l := range m.itemLines() {
		if l == line {
			m.previewSel = i
			break
		}
	}
	m.setPreviewContent()
}

func (m *Model) movePreviewSel(delta int) {
	n := len(m.itemLines())
	if n == 0 {
		return
	}
	m.previewSel = clampInt(m.previewSel+delta, 0, n-1)
	line := m.selectedPreviewLine()
	if h := m.preview.Height; h > 0 {
		if line < m.preview.YOffset {
			m.preview.SetYOffset(line)
		} else if line >= m.preview.YOffset+h {
			m.preview.SetYOffset(line - h + 1)
		}
	}
	m.setPreviewContent()
}

// clickPreviewLine toggles the checklist item drawn on line, if any.
func (m *Model) clickPreviewLine(line int) {
	id, ok := m.rendered.ItemAt(line)
	if !ok || m.cfg.ReadOnly {
		return
	}
	if err := m.comp.Preview().Click(id); err != nil {
		m.logger.Debug("preview click rejected", zap.Int("line", line), zap.Error(err))
		m.setError(err)
		return
	}
	m.clearStatus()
}

func (m Model) updatePreviewKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.movePreviewSel(-1)
	case key.Matches(msg, km.Down):
		m.movePreviewSel(1)
	case key.Matches(msg, km.ToggleItem):
		m.clickPreviewLine(m.selectedPreviewLine())
	case key.Matches(msg, km.Undo):
		m.history(false)
	case key.Matches(msg, km.Redo):
		m.history(true)
	case key.Matches(msg, km.Cancel):
		m.pane = PaneMarkdown
		m.rebuildContent()
		m.setPreviewContent()
	}
	return m
}
