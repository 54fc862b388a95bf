package editor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/mdpane/internal/grapheme"
)

func (m *Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(strconv.Itoa(lineCount)) + 1
}

func (m *Model) contentWidth(lineCount int) int {
	return m.viewport.Width - m.gutterWidth(lineCount)
}

func (m *Model) renderContent() string {
	buf := m.comp.Buffer()
	lines := splitDocLines(buf.Text())
	curRow, curCol := m.cursorRowCol(lines)
	showCursor := m.focused && m.pane == PaneMarkdown && !m.prompting

	selStart, selEnd, hasSel := 0, 0, false
	if r, ok := buf.SelectedRange(); ok {
		selStart, selEnd, hasSel = buf.RuneOffsetFromPos(r.Start), buf.RuneOffsetFromPos(r.End), true
	}

	digits := 0
	if m.cfg.ShowLineNums {
		digits = len(strconv.Itoa(len(lines)))
	}
	width := m.contentWidth(len(lines))

	// Highlight only what the viewport shows.
	hlStart, hlEnd := 0, 0
	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		hlStart = clampInt(m.viewport.YOffset, 0, len(lines))
		hlEnd = minInt(hlStart+h, len(lines))
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == curRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		var spans []HighlightSpan
		if row >= hlStart && row < hlEnd {
			spans = m.highlightForLine(row, line.text, row == curRow, curCol)
		}
		cursorCol := -1
		if showCursor && row == curRow {
			cursorCol = curCol
		}
		sb.WriteString(renderLine(m.cfg.Style, line, cursorCol, selStart, selEnd, hasSel, spans, m.xOffset, width, m.cfg.TabWidth))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) highlightForLine(row int, text string, hasCursor bool, cursorCol int) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	if !hasCursor {
		cursorCol = -1
	}
	spans, err := m.cfg.Highlighter.HighlightLine(LineContext{
		Row:       row,
		Text:      text,
		CursorCol: cursorCol,
		HasCursor: hasCursor,
	})
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, utf8.RuneCountInString(text))
}

// renderLine draws the cells [left, left+width) of one line. A negative
// cursorCol means the line has no cursor; width <= 0 means no clipping.
func renderLine(
	st Style,
	line docLine,
	cursorCol int,
	selStart, selEnd int,
	hasSel bool,
	spans []HighlightSpan,
	left, width, tabWidth int,
) string {
	right := int(^uint(0) >> 1)
	if width > 0 {
		right = left + width
	}

	var sb strings.Builder
	cell, col := 0, 0
	for _, g := range grapheme.Split(line.text) {
		w := grapheme.Width(g, cell, tabWidth)
		n := utf8.RuneCountInString(g)
		if cell >= left && cell+w <= right {
			text := g
			if g == "\t" {
				text = strings.Repeat(" ", w)
			}
			style := st.Text
			off := line.start + col
			switch {
			case cursorCol >= col && cursorCol < col+n:
				style = st.Cursor
			case hasSel && off >= selStart && off < selEnd:
				style = st.Selection
			default:
				for _, sp := range spans {
					if col < sp.EndCol && col+n > sp.StartCol {
						style = sp.Style.Inherit(st.Text)
						break
					}
				}
			}
			sb.WriteString(style.Render(text))
		}
		cell += w
		col += n
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol >= col && cell >= left && cell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}
