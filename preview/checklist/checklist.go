// Package checklist is a goldmark extension for checklist items.
package checklist

import (
	"bytes"
	"regexp"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindItem is the kind of Item nodes.
var KindItem = ast.NewNodeKind("ChecklistItem")

const (
	// Ahead of thematic breaks (200) and lists (300), which would
	// otherwise claim the line.
	checklistParserPriority = 150
	// After the task list extension has placed its checkboxes.
	checklistTransformerPriority = 200
)

var checklistLineRE = regexp.MustCompile(`^[-*]\s*\[([xX ])]\s+`)

// Item is a checklist entry. Offset is the byte offset of the start of
// its source line.
type Item struct {
	ast.BaseBlock
	Checked bool
	Offset  int
}

func (n *Item) Kind() ast.NodeKind {
	return KindItem
}

func (n *Item) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Checked": strconv.FormatBool(n.Checked),
		"Offset":  strconv.Itoa(n.Offset),
	}, nil)
}

// checklistParser opens an Item for lines like "- [ ] task",
// "* [x] done" and "-[ ] tight".
type checklistParser struct{}

func (p *checklistParser) Trigger() []byte {
	return []byte{'-', '*'}
}

func (p *checklistParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	if parent.Kind() == ast.KindList {
		return nil, parser.NoChildren
	}
	pos := pc.BlockOffset()
	if pos < 0 || pc.BlockIndent() > 3 {
		return nil, parser.NoChildren
	}
	line, segment := reader.PeekLine()
	body := bytes.TrimRight(line[pos:], "\r\n")
	m := checklistLineRE.FindSubmatchIndex(body)
	if m == nil {
		return nil, parser.NoChildren
	}

	node := &Item{Checked: body[m[2]] != ' ', Offset: lineStart(reader.Source(), segment.Start)}
	start := segment.Start + pos + m[1]
	stop := segment.Start + pos + len(body)
	seg := text.NewSegment(start, stop)
	seg = seg.TrimRightSpace(reader.Source())
	node.Lines().Append(seg)
	reader.Advance(segment.Len() - 1)
	return node, parser.NoChildren
}

func (p *checklistParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (p *checklistParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *checklistParser) CanInterruptParagraph() bool {
	return true
}

func (p *checklistParser) CanAcceptIndentedLine() bool {
	return false
}

// checklistTransformer turns GFM task list items into Item nodes
// so nested checklists are bound the same way as top-level ones.
type checklistTransformer struct{}

func (t *checklistTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	var items []*ast.ListItem
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindListItem {
			return ast.WalkContinue, nil
		}
		if taskCheckBox(n) != nil {
			items = append(items, n.(*ast.ListItem))
		}
		return ast.WalkContinue, nil
	})

	for _, li := range items {
		box := taskCheckBox(li)
		first := li.FirstChild()
		item := &Item{Checked: box.IsChecked, Offset: -1}
		if lines := first.Lines(); lines.Len() > 0 {
			item.Offset = lineStart(reader.Source(), lines.At(0).Start)
		}
		first.RemoveChild(first, box)

		for child := li.FirstChild(); child != nil; {
			next := child.NextSibling()
			item.AppendChild(item, child)
			child = next
		}
		if parent := li.Parent(); parent != nil {
			parent.ReplaceChild(parent, li, item)
		}
	}
}

func taskCheckBox(li ast.Node) *extast.TaskCheckBox {
	first := li.FirstChild()
	if first == nil {
		return nil
	}
	box, _ := first.FirstChild().(*extast.TaskCheckBox)
	return box
}

func lineStart(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.LastIndexByte(source[:offset], '\n') + 1
}

type checklistExtension struct{}

// Extension is the goldmark extension recognising checklist items.
var Extension goldmark.Extender = &checklistExtension{}

func (e *checklistExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&checklistParser{}, checklistParserPriority),
		),
		parser.WithASTTransformers(
			util.Prioritized(&checklistTransformer{}, checklistTransformerPriority),
		),
	)
}
