// Package format toggles inline Markdown syntax on raw text.
//
// Formatting state is never stored: whether a span is bold, italic or
// struck through is inferred from the marker pairs around it. The pure
// functions here work on rune offsets into one block's text; the Buffer
// helpers in toggle.go apply them inside a transaction.
package format

import (
	"unicode"
)

// Kind is an inline format a toolbar button can request.
type Kind string

const (
	Bold          Kind = "bold"
	Italic        Kind = "italic"
	Code          Kind = "code"
	Strikethrough Kind = "strikethrough"
	Underline     Kind = "underline"
)

var kindMarkers = map[Kind]string{
	Bold:          "**",
	Italic:        "_",
	Code:          "`",
	Strikethrough: "~~",
}

// Markers returns the Markdown delimiter for k. Underline has none.
func (k Kind) Markers() (string, bool) {
	m, ok := kindMarkers[k]
	return m, ok
}

// FormattedRange locates a marker pair in rune offsets. [Start, End) covers
// both markers, [TextStart, TextEnd) only the wrapped text.
type FormattedRange struct {
	Start, End         int
	TextStart, TextEnd int
}

func indexFrom(text, sub []rune, from int) int {
	if len(sub) == 0 {
		return -1
	}
	if from < 0 {
		from = 0
	}
	for i := from; i+len(sub) <= len(text); i++ {
		match := true
		for j := range sub {
			if text[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func contains(text, sub []rune) bool {
	return indexFrom(text, sub, 0) >= 0
}

// LastMarkerBefore returns the start of the last non-overlapping occurrence
// of markers that begins before offset, or -1.
func LastMarkerBefore(text string, offset int, markers string) int {
	return lastMarkerBefore([]rune(text), offset, []rune(markers))
}

func lastMarkerBefore(text []rune, offset int, markers []rune) int {
	pos, i := -1, 0
	for i < offset {
		found := indexFrom(text, markers, i)
		if found == -1 || found >= offset {
			break
		}
		pos = found
		i = found + len(markers)
	}
	return pos
}

// FirstMarkerAfter returns the first occurrence of markers at or after
// offset, or -1.
func FirstMarkerAfter(text string, offset int, markers string) int {
	return indexFrom([]rune(text), []rune(markers), offset)
}

// FindFormattedRange reports the marker pair enclosing offset. The text
// between the two markers must not itself contain markers, which rejects
// nested or ambiguous regions.
func FindFormattedRange(text string, offset int, markers string) (FormattedRange, bool) {
	return findFormattedRange([]rune(text), offset, []rune(markers))
}

func findFormattedRange(text []rune, offset int, markers []rune) (FormattedRange, bool) {
	if len(markers) == 0 || offset < 0 || offset > len(text) {
		return FormattedRange{}, false
	}
	before := lastMarkerBefore(text, offset, markers)
	if before == -1 {
		return FormattedRange{}, false
	}
	after := indexFrom(text, markers, offset)
	if after == -1 {
		return FormattedRange{}, false
	}
	textStart := before + len(markers)
	if textStart > after || contains(text[textStart:after], markers) {
		return FormattedRange{}, false
	}
	return FormattedRange{
		Start:     before,
		End:       after + len(markers),
		TextStart: textStart,
		TextEnd:   after,
	}, true
}

// IsCaretInside reports whether offset lies inside a matched marker pair.
func IsCaretInside(text string, offset int, markers string) bool {
	_, ok := FindFormattedRange(text, offset, markers)
	return ok
}

// FindWordBoundaries returns the whitespace-delimited word around offset.
func FindWordBoundaries(text string, offset int) (start, end int, ok bool) {
	return findWordBoundaries([]rune(text), offset)
}

func findWordBoundaries(text []rune, offset int) (start, end int, ok bool) {
	if len(text) == 0 || offset < 0 || offset > len(text) {
		return 0, 0, false
	}
	start = offset
	for start > 0 && !unicode.IsSpace(text[start-1]) {
		start--
	}
	end = offset
	for end < len(text) && !unicode.IsSpace(text[end]) {
		end++
	}
	if start == end {
		return 0, 0, false
	}
	return start, end, true
}
