package format

import (
	"strings"
	"unicode"
)

// ToggleSelected strips markers from both ends of selected when it is
// wrapped, and wraps it otherwise.
func ToggleSelected(selected, markers string) string {
	rs, ms := []rune(selected), []rune(markers)
	if len(ms) > 0 && len(rs) >= 2*len(ms) &&
		strings.HasPrefix(selected, markers) && strings.HasSuffix(selected, markers) {
		return string(rs[len(ms) : len(rs)-len(ms)])
	}
	return markers + selected + markers
}

// ToggleAtCaret toggles markers around the caret at offset in text. Inside
// a matched pair the pair is removed; otherwise the word under the caret is
// wrapped. It returns the new text and caret, or ok == false when there is
// neither a pair nor a word to act on.
func ToggleAtCaret(text string, offset int, markers string) (next string, caret int, ok bool) {
	rs, ms := []rune(text), []rune(markers)
	if len(ms) == 0 {
		return "", 0, false
	}

	if fr, inside := findFormattedRange(rs, offset, ms); inside {
		inner := rs[fr.TextStart:fr.TextEnd]
		out := make([]rune, 0, len(rs)-2*len(ms))
		out = append(out, rs[:fr.Start]...)
		out = append(out, inner...)
		out = append(out, rs[fr.End:]...)

		caret = fr.Start + (offset - fr.TextStart)
		caret = max(fr.Start, min(fr.Start+len(inner), caret))
		return string(out), caret, true
	}

	start, end, found := findWordBoundaries(rs, offset)
	if !found {
		return "", 0, false
	}
	out := make([]rune, 0, len(rs)+2*len(ms))
	out = append(out, rs[:start]...)
	out = append(out, ms...)
	out = append(out, rs[start:end]...)
	out = append(out, ms...)
	out = append(out, rs[end:]...)
	return string(out), offset + len(ms), true
}

// LinkText returns the Markdown link for selected and url.
func LinkText(selected, url string) (string, error) {
	if selected == "" {
		return "", ErrEmptySelection
	}
	if strings.TrimSpace(selected) == "" {
		return "", ErrBlankText
	}
	if strings.TrimSpace(url) == "" {
		return "", ErrEmptyURL
	}
	return "[" + selected + "](" + url + ")", nil
}

// IsQuoted reports whether every non-blank line starts with "> " after
// leading whitespace.
func IsQuoted(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "> ") {
			return false
		}
	}
	return true
}

// QuoteText toggles the "> " prefix on every non-blank line. Blank lines
// are kept as they are in both directions.
func QuoteText(text string) string {
	lines := strings.Split(text, "\n")
	quoted := IsQuoted(text)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if quoted {
			indent := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
			lines[i] = line[:indent] + line[indent+2:]
			continue
		}
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
