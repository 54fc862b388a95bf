package buffer

// Pos points into the document by (block, offset) in runes.
// Block and Offset are 0-based.
type Pos struct {
	Block  int
	Offset int
}

// Range is a half-open span in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

// Selection is an anchor/focus pair. A collapsed selection is a caret.
type Selection struct {
	Anchor Pos
	Focus  Pos
}

// Caret returns a collapsed selection at p.
func Caret(p Pos) Selection {
	return Selection{Anchor: p, Focus: p}
}

func (s Selection) IsCollapsed() bool {
	return s.Anchor == s.Focus
}

// Range returns the selection as a normalized range.
func (s Selection) Range() Range {
	return NormalizeRange(Range{Start: s.Anchor, End: s.Focus})
}

// Block is a read-only copy of one top-level block.
type Block struct {
	ID   uint64
	Text string
}

func ComparePos(a, b Pos) int {
	if a.Block < b.Block {
		return -1
	}
	if a.Block > b.Block {
		return 1
	}
	if a.Offset < b.Offset {
		return -1
	}
	if a.Offset > b.Offset {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by blockCount and blockLen.
//
// The returned Pos always satisfies:
// - 0 <= Block < blockCount (with blockCount treated as at least 1)
// - 0 <= Offset <= blockLen(Block)
func ClampPos(p Pos, blockCount int, blockLen func(block int) int) Pos {
	if blockCount <= 0 {
		blockCount = 1
	}

	blk := clampInt(p.Block, 0, blockCount-1)

	maxOff := 0
	if blockLen != nil {
		maxOff = blockLen(blk)
		if maxOff < 0 {
			maxOff = 0
		}
	}
	return Pos{Block: blk, Offset: clampInt(p.Offset, 0, maxOff)}
}

func ClampRange(r Range, blockCount int, blockLen func(block int) int) Range {
	return Range{
		Start: ClampPos(r.Start, blockCount, blockLen),
		End:   ClampPos(r.End, blockCount, blockLen),
	}
}
