package preview

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// DefaultTheme is the chroma style used for code blocks.
const DefaultTheme = "monokai"

const (
	quoteBar   = "│ "
	bullet     = "• "
	codeIndent = "  "
	ruleWidth  = 20
)

// Styles controls how preview nodes are drawn.
type Styles struct {
	Text          lipgloss.Style
	Heading       lipgloss.Style
	Emphasis      lipgloss.Style
	Strong        lipgloss.Style
	Strikethrough lipgloss.Style
	Code          lipgloss.Style
	CodeBlock     lipgloss.Style
	Link          lipgloss.Style
	URL           lipgloss.Style
	Quote         lipgloss.Style
	Marker        lipgloss.Style
	Checked       lipgloss.Style
	Rule          lipgloss.Style
}

func DefaultStyles(r *lipgloss.Renderer) Styles {
	faint := r.NewStyle().Foreground(lipgloss.Color("244"))
	return Styles{
		Text:          r.NewStyle(),
		Heading:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Emphasis:      r.NewStyle().Italic(true),
		Strong:        r.NewStyle().Bold(true),
		Strikethrough: r.NewStyle().Strikethrough(true),
		Code:          r.NewStyle().Foreground(lipgloss.Color("215")),
		CodeBlock:     r.NewStyle().Foreground(lipgloss.Color("252")),
		Link:          r.NewStyle().Underline(true).Foreground(lipgloss.Color("45")),
		URL:           faint,
		Quote:         faint,
		Marker:        r.NewStyle().Foreground(lipgloss.Color("212")),
		Checked:       faint.Strikethrough(true),
		Rule:          faint,
	}
}

// Renderer draws a Document as terminal lines. It is not safe for
// concurrent use.
type Renderer struct {
	Out    *lipgloss.Renderer
	Styles Styles
	Theme  string
	// Width wraps paragraphs when positive. Code blocks are never wrapped.
	Width int

	highlighted map[string]string
}

func NewRenderer(out *lipgloss.Renderer, width int) *Renderer {
	if out == nil {
		out = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		Out:    out,
		Styles: DefaultStyles(out),
		Theme:  DefaultTheme,
		Width:  width,
	}
}

// Rendered is the output of one render pass. Items maps an output line to
// the checklist item drawn on it.
type Rendered struct {
	Lines []string
	Items map[int]ItemID
}

func (r Rendered) String() string {
	return strings.Join(r.Lines, "\n")
}

// ItemAt returns the checklist item drawn on line, if any.
func (r Rendered) ItemAt(line int) (ItemID, bool) {
	id, ok := r.Items[line]
	return id, ok
}

type layout struct {
	lines   []string
	items   map[int]ItemID
	pending *ItemID
}

func (l *layout) emit(line string) {
	if l.pending != nil {
		l.items[len(l.lines)] = *l.pending
		l.pending = nil
	}
	l.lines = append(l.lines, line)
}

func (l *layout) mark(id ItemID) {
	l.pending = &id
}

func (r *Renderer) Render(doc *Document) Rendered {
	l := &layout{items: make(map[int]ItemID)}
	r.children(l, doc.Root().Children, "", "", true)
	return Rendered{Lines: l.lines, Items: l.items}
}

// children draws nodes one below the other. first prefixes the first
// output line, rest every later one.
func (r *Renderer) children(l *layout, nodes []*Node, first, rest string, loose bool) {
	for i, n := range nodes {
		p := first
		if i > 0 {
			p = rest
			if loose {
				l.emit(strings.TrimRight(rest, " "))
			}
		}
		r.block(l, n, p, rest)
	}
}

func (r *Renderer) block(l *layout, n *Node, first, rest string) {
	st := r.Styles
	switch n.Kind {
	case KindParagraph:
		r.paragraph(l, n, st.Text, first, rest)
	case KindHeading:
		r.paragraph(l, n, st.Heading, first, rest)
	case KindQuote:
		bar := st.Quote.Render(quoteBar)
		r.children(l, n.Children, first+bar, rest+bar, true)
	case KindList:
		for i, item := range n.Children {
			marker := bullet
			if n.Ordered {
				marker = fmt.Sprintf("%d. ", n.Start+i)
			}
			pad := strings.Repeat(" ", ansi.StringWidth(marker))
			p := rest
			if i == 0 {
				p = first
			}
			if item.Kind == KindChecklistItem {
				r.block(l, item, p, rest)
				continue
			}
			r.children(l, item.Children, p+st.Marker.Render(marker), rest+pad, false)
		}
	case KindChecklist:
		for i, item := range n.Children {
			p := rest
			if i == 0 {
				p = first
			}
			r.block(l, item, p, rest)
		}
	case KindChecklistItem:
		box := "[ ] "
		if n.Checked {
			box = "[x] "
		}
		l.mark(n.ID)
		r.checklistItem(l, n, first+st.Marker.Render(box), rest+strings.Repeat(" ", len(box)))
	case KindListItem:
		r.children(l, n.Children, first, rest, false)
	case KindCodeBlock:
		for i, line := range strings.Split(r.highlight(n.Text, n.Language), "\n") {
			p := rest
			if i == 0 {
				p = first
			}
			l.emit(p + codeIndent + line)
		}
	case KindThematicBreak:
		w := ruleWidth
		if r.Width > 0 {
			w = r.Width - ansi.StringWidth(first)
		}
		l.emit(first + st.Rule.Render(strings.Repeat("─", max(w, 1))))
	default:
		r.paragraph(l, n, st.Text, first, rest)
	}
}

func (r *Renderer) checklistItem(l *layout, n *Node, first, rest string) {
	for i, c := range n.Children {
		p := rest
		if i == 0 {
			p = first
		}
		if c.Kind == KindParagraph && n.Checked {
			r.paragraph(l, c, r.Styles.Checked, p, rest)
			continue
		}
		r.block(l, c, p, rest)
	}
	if len(n.Children) == 0 {
		l.emit(first)
	}
}

func (r *Renderer) paragraph(l *layout, n *Node, style lipgloss.Style, first, rest string) {
	w := &inlineWriter{}
	r.inlines(w, n, style)
	out := w.finish()

	i := 0
	for _, line := range out {
		for _, wrapped := range r.wrap(line, ansi.StringWidth(rest)) {
			p := rest
			if i == 0 {
				p = first
			}
			l.emit(p + wrapped)
			i++
		}
	}
}

func (r *Renderer) wrap(line string, indent int) []string {
	if r.Width <= 0 {
		return []string{line}
	}
	limit := r.Width - indent
	if limit < 1 {
		limit = 1
	}
	return strings.Split(ansi.Wordwrap(line, limit, ""), "\n")
}

type inlineWriter struct {
	lines []string
	cur   strings.Builder
}

func (w *inlineWriter) write(s string) { w.cur.WriteString(s) }

func (w *inlineWriter) newline() {
	w.lines = append(w.lines, w.cur.String())
	w.cur.Reset()
}

func (w *inlineWriter) finish() []string {
	w.newline()
	return w.lines
}

func (r *Renderer) inlines(w *inlineWriter, n *Node, style lipgloss.Style) {
	st := r.Styles
	for _, c := range n.Children {
		switch c.Kind {
		case KindText:
			if c.Text != "" {
				w.write(style.Render(c.Text))
			}
		case KindSoftBreak:
			w.newline()
		case KindEmphasis:
			s := st.Emphasis
			if c.Level >= 2 {
				s = st.Strong
			}
			r.inlines(w, c, s.Inherit(style))
		case KindStrikethrough:
			r.inlines(w, c, st.Strikethrough.Inherit(style))
		case KindCodeSpan:
			w.write(st.Code.Inherit(style).Render(c.Text))
		case KindLink:
			r.inlines(w, c, st.Link.Inherit(style))
			if c.URL != "" && c.URL != c.PlainText() {
				w.write(st.URL.Render(" (" + c.URL + ")"))
			}
		default:
			r.inlines(w, c, style)
		}
	}
}

// highlight colors code with chroma in the renderer's color profile. Code
// in an unknown language, or on a terminal without colors, is returned as
// plain text.
func (r *Renderer) highlight(code, language string) string {
	name := formatterFor(r.Out.ColorProfile())
	if name == "" || language == "" {
		return r.plainCode(code)
	}
	key := language + ":" + r.Theme + ":" + name + ":" + code
	if v, ok := r.highlighted[key]; ok {
		return v
	}

	lex := lexers.Get(language)
	if lex == nil {
		return r.plainCode(code)
	}
	lex = chroma.Coalesce(lex)
	fmtr := formatters.Get(name)
	if fmtr == nil {
		fmtr = formatters.Fallback
	}
	it, err := lex.Tokenise(nil, code)
	if err != nil {
		return r.plainCode(code)
	}
	var sb strings.Builder
	if err := fmtr.Format(&sb, styles.Get(r.Theme), it); err != nil {
		return r.plainCode(code)
	}
	out := strings.TrimRight(sb.String(), "\n")

	if r.highlighted == nil || len(r.highlighted) > 500 {
		r.highlighted = make(map[string]string)
	}
	r.highlighted[key] = out
	return out
}

func (r *Renderer) plainCode(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = r.Styles.CodeBlock.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func formatterFor(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal"
	default:
		return ""
	}
}
