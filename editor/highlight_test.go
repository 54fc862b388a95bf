package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

type spanRange struct{ Start, End int }

func ranges(spans []HighlightSpan) []spanRange {
	var out []spanRange
	for _, sp := range spans {
		out = append(out, spanRange{sp.StartCol, sp.EndCol})
	}
	return out
}

func TestMarkdownHighlighter_Spans(t *testing.T) {
	h := NewMarkdownHighlighter()
	tests := []struct {
		text string
		want []spanRange
	}{
		{"# Title", []spanRange{{0, 7}}},
		{"```go", []spanRange{{0, 5}}},
		{"plain text", nil},
		{"- [ ] a `x` **b**", []spanRange{{0, 6}, {8, 11}, {12, 17}}},
		{"12. see [it](u)", []spanRange{{0, 4}, {8, 15}}},
		{"> ~~gone~~", []spanRange{{0, 2}, {2, 10}}},
		{"\u00e9 _em_", []spanRange{{2, 6}}},
	}
	for _, tt := range tests {
		spans, err := h.HighlightLine(LineContext{Text: tt.text})
		if err != nil {
			t.Fatalf("%q: %v", tt.text, err)
		}
		if diff := cmp.Diff(tt.want, ranges(spans)); diff != "" {
			t.Fatalf("%q spans mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestNormalizeHighlightSpans(t *testing.T) {
	st := lipgloss.NewStyle()
	in := []HighlightSpan{
		{StartCol: 4, EndCol: 2, Style: st},
		{StartCol: 0, EndCol: 3, Style: st},
		{StartCol: 3, EndCol: 3, Style: st},
		{StartCol: 5, EndCol: 99, Style: st},
	}
	want := []spanRange{{0, 3}, {5, 6}}
	if diff := cmp.Diff(want, ranges(normalizeHighlightSpans(in, 6))); diff != "" {
		t.Fatalf("normalized spans mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlighter_OnlyVisibleRows(t *testing.T) {
	var rows []int
	m := newModel(t, Config{
		Text: "a\nb\nc\nd\ne",
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			rows = append(rows, ctx.Row)
			return nil, nil
		}),
	})
	m = m.SetSize(21, 4)
	m.viewport.SetYOffset(1)

	rows = nil
	_ = m.renderContent()
	if diff := cmp.Diff([]int{1, 2}, rows); diff != "" {
		t.Fatalf("highlighted rows mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlighter_ReceivesCursorContext(t *testing.T) {
	var got []LineContext
	m := newModel(t, Config{
		Text: "ab\ncd",
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			got = append(got, ctx)
			return nil, nil
		}),
	})
	m = m.SetSize(21, 4)
	m.Buffer().SetCursor(m.Buffer().PosFromRuneOffset(4))

	got = nil
	_ = m.renderContent()
	want := []LineContext{
		{Row: 0, Text: "ab", CursorCol: -1},
		{Row: 1, Text: "cd", CursorCol: 1, HasCursor: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("contexts mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlighter_ErrorFallsBackToPlainText(t *testing.T) {
	m := newModel(t, Config{
		Text: "**ab**",
		Highlighter: HighlighterFunc(func(LineContext) ([]HighlightSpan, error) {
			return nil, errors.New("boom")
		}),
	})
	m = m.Blur()
	m = m.SetSize(21, 3)

	if got := strings.TrimRight(ansi.Strip(m.renderContent()), " "); got != "**ab**" {
		t.Fatalf("content: got %q, want %q", got, "**ab**")
	}
}
