package preview

// NodeKind is the type of a preview node.
type NodeKind int

const (
	KindDocument NodeKind = iota
	KindParagraph
	KindHeading
	KindQuote
	KindList
	KindListItem
	KindChecklist
	KindChecklistItem
	KindCodeBlock
	KindThematicBreak
	KindText
	KindEmphasis
	KindStrikethrough
	KindCodeSpan
	KindLink
	KindSoftBreak
)

var nodeKindNames = [...]string{
	KindDocument:      "document",
	KindParagraph:     "paragraph",
	KindHeading:       "heading",
	KindQuote:         "quote",
	KindList:          "list",
	KindListItem:      "listitem",
	KindChecklist:     "checklist",
	KindChecklistItem: "checklistitem",
	KindCodeBlock:     "codeblock",
	KindThematicBreak: "thematicbreak",
	KindText:          "text",
	KindEmphasis:      "emphasis",
	KindStrikethrough: "strikethrough",
	KindCodeSpan:      "codespan",
	KindLink:          "link",
	KindSoftBreak:     "softbreak",
}

func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "unknown"
}

// ItemID identifies a checklist item of one render generation by the
// 0-based source line it came from.
type ItemID struct {
	Generation uint64
	Line       int
}

// Node is one element of the rendered preview tree.
type Node struct {
	Kind NodeKind

	Text     string // text, code span, code block body
	Level    int    // heading level, emphasis level (1 italic, 2 bold)
	Ordered  bool   // list
	Start    int    // first number of an ordered list
	Language string // code block
	URL      string // link
	Checked  bool   // checklist entry
	ID       ItemID // checklist entry

	Children []*Node
}

func (n *Node) append(c *Node) *Node {
	n.Children = append(n.Children, c)
	return c
}

// PlainText returns the concatenated text of n and its descendants.
func (n *Node) PlainText() string {
	var out []byte
	var walk func(*Node)
	walk = func(n *Node) {
		switch n.Kind {
		case KindText, KindCodeSpan, KindCodeBlock:
			out = append(out, n.Text...)
		case KindSoftBreak:
			out = append(out, '\n')
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return string(out)
}

// Walk calls fn for n and every descendant in document order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
