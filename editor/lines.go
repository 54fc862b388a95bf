package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/mdpane/internal/grapheme"
)

// docLine is one '\n'-separated line of the buffer text. start is the rune
// offset of its first rune in the whole text.
type docLine struct {
	text  string
	start int
}

func splitDocLines(text string) []docLine {
	parts := strings.Split(text, "\n")
	out := make([]docLine, len(parts))
	off := 0
	for i, p := range parts {
		out[i] = docLine{text: p, start: off}
		off += utf8.RuneCountInString(p) + 1
	}
	return out
}

// lineOfOffset maps a rune offset of the whole text to (row, rune col).
func lineOfOffset(lines []docLine, off int) (row, col int) {
	for i := len(lines) - 1; i >= 0; i-- {
		if off >= lines[i].start {
			return i, minInt(off-lines[i].start, utf8.RuneCountInString(lines[i].text))
		}
	}
	return 0, 0
}

func (m Model) cursorRowCol(lines []docLine) (row, col int) {
	buf := m.comp.Buffer()
	return lineOfOffset(lines, buf.RuneOffsetFromPos(buf.Cursor()))
}

// cellForCol returns the cell where the grapheme at rune col starts.
func cellForCol(text string, col, tabWidth int) int {
	cell, c := 0, 0
	for _, g := range grapheme.Split(text) {
		if c >= col {
			return cell
		}
		cell += grapheme.Width(g, cell, tabWidth)
		c += utf8.RuneCountInString(g)
	}
	return cell
}

// colForCell returns the rune col of the grapheme covering cell, or the
// line length past the end.
func colForCell(text string, cell, tabWidth int) int {
	at, col := 0, 0
	for _, g := range grapheme.Split(text) {
		w := grapheme.Width(g, at, tabWidth)
		if cell < at+w {
			return col
		}
		at += w
		col += utf8.RuneCountInString(g)
	}
	return col
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
