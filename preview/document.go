// Package preview keeps a read-only rendered mirror of the editor text.
//
// The mirror is rebuilt from scratch on every text change: the text is
// parsed as Markdown with goldmark, converted into a Node tree, and every
// checklist item gets an ItemID made of the render generation and its
// source line. A Binder attaches click handlers to those items; a click
// flips the matching "[ ]" or "[x]" in the primary buffer.
package preview

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/iw2rmb/mdpane/preview/checklist"
)

// NewMarkdown returns the goldmark instance used for previews.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
			extension.TaskList,
			checklist.Extension,
		),
	)
}

// Document is the preview tree of one editor.
type Document struct {
	md         goldmark.Markdown
	source     string
	root       *Node
	generation uint64
	items      []*Node
	byID       map[ItemID]*Node
}

func NewDocument() *Document {
	return &Document{
		md:   NewMarkdown(),
		root: &Node{Kind: KindDocument},
		byID: make(map[ItemID]*Node),
	}
}

func (d *Document) Root() *Node { return d.root }

// Generation increases on every Rebuild.
func (d *Document) Generation() uint64 { return d.generation }

func (d *Document) Source() string { return d.source }

// Items returns the checklist items in document order.
func (d *Document) Items() []*Node { return d.items }

func (d *Document) Item(id ItemID) (*Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// Rebuild discards the current tree and parses src into a new one. If the
// parser fails, the tree holds src as a single plain paragraph and the
// failure is returned.
func (d *Document) Rebuild(src string) (err error) {
	d.generation++
	d.source = src
	d.items = nil
	d.byID = make(map[ItemID]*Node)

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("preview: parse markdown: %v", r)
			d.items = nil
			d.byID = make(map[ItemID]*Node)
			d.root = &Node{Kind: KindDocument, Children: []*Node{
				{Kind: KindParagraph, Children: []*Node{{Kind: KindText, Text: src}}},
			}}
		}
	}()

	data := []byte(src)
	tree := d.md.Parser().Parse(text.NewReader(data))

	c := &converter{doc: d, src: data, lineStarts: lineStarts(data)}
	root := &Node{Kind: KindDocument}
	c.blocks(root, tree)
	d.root = root
	return nil
}

func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

type converter struct {
	doc        *Document
	src        []byte
	lineStarts []int
}

func (c *converter) lineOf(offset int) int {
	return sort.SearchInts(c.lineStarts, offset+1) - 1
}

func (c *converter) blocks(parent *Node, n ast.Node) {
	for child := n.FirstChild(); child != nil; {
		if child.Kind() == checklist.KindItem && n.Kind() != ast.KindList {
			group := parent.append(&Node{Kind: KindChecklist})
			for child != nil && child.Kind() == checklist.KindItem {
				c.block(group, child)
				child = child.NextSibling()
			}
			continue
		}
		c.block(parent, child)
		child = child.NextSibling()
	}
}

func (c *converter) block(parent *Node, n ast.Node) {
	switch n.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		c.inlines(parent.append(&Node{Kind: KindParagraph}), n)
	case ast.KindHeading:
		c.inlines(parent.append(&Node{Kind: KindHeading, Level: n.(*ast.Heading).Level}), n)
	case ast.KindBlockquote:
		c.blocks(parent.append(&Node{Kind: KindQuote}), n)
	case ast.KindList:
		l := n.(*ast.List)
		kind := KindChecklist
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if child.Kind() != checklist.KindItem {
				kind = KindList
				break
			}
		}
		c.blocks(parent.append(&Node{Kind: kind, Ordered: l.IsOrdered(), Start: l.Start}), n)
	case ast.KindListItem:
		c.blocks(parent.append(&Node{Kind: KindListItem}), n)
	case checklist.KindItem:
		c.checklistItem(parent, n.(*checklist.Item))
	case ast.KindFencedCodeBlock:
		fc := n.(*ast.FencedCodeBlock)
		parent.append(&Node{Kind: KindCodeBlock, Language: string(fc.Language(c.src)), Text: trimNewline(c.lines(n))})
	case ast.KindCodeBlock:
		parent.append(&Node{Kind: KindCodeBlock, Text: trimNewline(c.lines(n))})
	case ast.KindThematicBreak:
		parent.append(&Node{Kind: KindThematicBreak})
	case ast.KindHTMLBlock:
		p := parent.append(&Node{Kind: KindParagraph})
		p.append(&Node{Kind: KindText, Text: trimNewline(c.lines(n))})
	default:
		if n.Type() == ast.TypeInline {
			c.inline(parent, n)
			return
		}
		c.blocks(parent, n)
	}
}

func (c *converter) checklistItem(parent *Node, item *checklist.Item) {
	id := ItemID{Generation: c.doc.generation, Line: c.lineOf(item.Offset)}
	node := parent.append(&Node{Kind: KindChecklistItem, Checked: item.Checked, ID: id})
	c.doc.items = append(c.doc.items, node)
	c.doc.byID[id] = node

	if first := item.FirstChild(); first == nil || first.Type() == ast.TypeInline {
		c.inlines(node.append(&Node{Kind: KindParagraph}), item)
		return
	}
	c.blocks(node, item)
}

func (c *converter) inlines(parent *Node, n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.inline(parent, child)
	}
}

func (c *converter) inline(parent *Node, n ast.Node) {
	switch n.Kind() {
	case ast.KindText:
		t := n.(*ast.Text)
		parent.append(&Node{Kind: KindText, Text: string(t.Segment.Value(c.src))})
		if t.SoftLineBreak() || t.HardLineBreak() {
			parent.append(&Node{Kind: KindSoftBreak})
		}
	case ast.KindString:
		parent.append(&Node{Kind: KindText, Text: string(n.(*ast.String).Value)})
	case ast.KindEmphasis:
		c.inlines(parent.append(&Node{Kind: KindEmphasis, Level: n.(*ast.Emphasis).Level}), n)
	case extast.KindStrikethrough:
		c.inlines(parent.append(&Node{Kind: KindStrikethrough}), n)
	case ast.KindCodeSpan:
		parent.append(&Node{Kind: KindCodeSpan, Text: c.rawText(n)})
	case ast.KindLink:
		c.inlines(parent.append(&Node{Kind: KindLink, URL: string(n.(*ast.Link).Destination)}), n)
	case ast.KindAutoLink:
		al := n.(*ast.AutoLink)
		link := parent.append(&Node{Kind: KindLink, URL: string(al.URL(c.src))})
		link.append(&Node{Kind: KindText, Text: string(al.Label(c.src))})
	case ast.KindImage:
		c.inlines(parent.append(&Node{Kind: KindLink, URL: string(n.(*ast.Image).Destination)}), n)
	case ast.KindRawHTML:
		raw := n.(*ast.RawHTML)
		var out []byte
		for i := 0; i < raw.Segments.Len(); i++ {
			seg := raw.Segments.At(i)
			out = append(out, seg.Value(c.src)...)
		}
		parent.append(&Node{Kind: KindText, Text: string(out)})
	case extast.KindTaskCheckBox:
	default:
		c.inlines(parent, n)
	}
}

// rawText returns the literal text under an inline node.
func (c *converter) rawText(n ast.Node) string {
	var out []byte
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			out = append(out, t.Segment.Value(c.src)...)
		case *ast.String:
			out = append(out, t.Value...)
		default:
			out = append(out, c.rawText(child)...)
		}
	}
	return string(out)
}

func (c *converter) lines(n ast.Node) string {
	var out []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, seg.Value(c.src)...)
	}
	return string(out)
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
