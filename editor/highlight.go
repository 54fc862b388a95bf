package editor

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartCol and EndCol are rune indices in the line, half-open
	// [StartCol, EndCol).
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorCol is the rune index within Text if the cursor is on this row;
	// otherwise -1.
	CursorCol int
	HasCursor bool
}

type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return f(ctx)
}

var (
	mdFenceRE    = regexp.MustCompile("^\\s*```.*$")
	mdHeadingRE  = regexp.MustCompile(`^#{1,6}\s.*$`)
	mdQuoteRE    = regexp.MustCompile(`^\s*(>\s?)`)
	mdMarkerRE   = regexp.MustCompile(`^\s*((?:[-*+]\s+\[[ xX]\]|[-*+]|\d+[.)])\s)`)
	mdCodeSpanRE = regexp.MustCompile("`[^`]+`")
	mdEmphRE     = regexp.MustCompile(`\*\*[^*]+\*\*|~~[^~]+~~|_[^_\s][^_]*_`)
	mdLinkRE     = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)
)

// MarkdownHighlighter colors Markdown syntax in the editable pane one line
// at a time. Fenced code bodies are not tracked across lines.
type MarkdownHighlighter struct {
	Heading  lipgloss.Style
	Marker   lipgloss.Style
	Quote    lipgloss.Style
	Code     lipgloss.Style
	Fence    lipgloss.Style
	Emphasis lipgloss.Style
	Link     lipgloss.Style
}

func NewMarkdownHighlighter() *MarkdownHighlighter {
	return &MarkdownHighlighter{
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Quote:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Fence:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Emphasis: lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	}
}

func (h *MarkdownHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	text := ctx.Text
	span := func(start, end int, st lipgloss.Style) HighlightSpan {
		return HighlightSpan{
			StartCol: utf8.RuneCountInString(text[:start]),
			EndCol:   utf8.RuneCountInString(text[:end]),
			Style:    st,
		}
	}

	if mdFenceRE.MatchString(text) {
		return []HighlightSpan{span(0, len(text), h.Fence)}, nil
	}
	if mdHeadingRE.MatchString(text) {
		return []HighlightSpan{span(0, len(text), h.Heading)}, nil
	}

	var out []HighlightSpan
	if m := mdQuoteRE.FindStringSubmatchIndex(text); m != nil {
		out = append(out, span(m[2], m[3], h.Quote))
	} else if m := mdMarkerRE.FindStringSubmatchIndex(text); m != nil {
		out = append(out, span(m[2], m[3], h.Marker))
	}
	for _, m := range mdCodeSpanRE.FindAllStringIndex(text, -1) {
		out = append(out, span(m[0], m[1], h.Code))
	}
	for _, m := range mdLinkRE.FindAllStringIndex(text, -1) {
		out = append(out, span(m[0], m[1], h.Link))
	}
	for _, m := range mdEmphRE.FindAllStringIndex(text, -1) {
		out = append(out, span(m[0], m[1], h.Emphasis))
	}
	return out, nil
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = maxInt(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	// Overlapping spans are dropped; the earliest one wins.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
