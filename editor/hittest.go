package editor

import "github.com/iw2rmb/mdpane/buffer"

// screenToDocPos maps Markdown-pane-local coordinates to a document
// position.
//
// Coordinates are in terminal cells relative to the pane: (0,0) is the
// top-left of the visible content. Gutter clicks map to the start of the
// line; x and y are clamped into document bounds.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	buf := m.comp.Buffer()
	lines := splitDocLines(buf.Text())
	row := clampInt(m.viewport.YOffset+y, 0, len(lines)-1)
	line := lines[row]

	col := 0
	if gw := m.gutterWidth(len(lines)); x >= gw {
		col = colForCell(line.text, x-gw+m.xOffset, m.cfg.TabWidth)
	}
	return buf.PosFromRuneOffset(line.start + col)
}

// ScreenToDoc maps Markdown-pane-local screen coordinates to a document
// position.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).screenToDocPos(x, y)
}

type region int

const (
	regionNone region = iota
	regionToolbar
	regionMarkdown
	regionPreview
	regionStatus
)

// regionAt classifies a model-relative coordinate and returns it relative
// to the region's top-left corner.
func (m Model) regionAt(x, y int) (region, int, int) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return regionNone, x, y
	}
	if y == 0 {
		return regionToolbar, x, 0
	}
	if y == m.height-1 {
		return regionStatus, x, 0
	}
	by := y - 1
	if x < m.viewport.Width {
		return regionMarkdown, x, by
	}
	if px := x - m.viewport.Width - 1; px >= 0 {
		return regionPreview, px, by
	}
	return regionNone, x, by
}
