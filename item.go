package layout

import "fmt"

// ItemType tags the kind of arrangement a LayoutItem represents.
type ItemType int

// The three arrangement kinds a layout tree node can take.
const (
	LineItemType ItemType = iota
	JuxtapositionItemType
	StackItemType
)

func (t ItemType) String() string {
	switch t {
	case LineItemType:
		return "Line"
	case JuxtapositionItemType:
		return "Juxtaposition"
	case StackItemType:
		return "Stack"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// LineView is a contiguous token range that renders on a single logical line
// absent further breaks. It is supplied by the caller (typically the
// token package) and referenced, never owned, by the layout engine.
type LineView interface {
	// Width reports the rendered width of the line in columns.
	Width() int
	// Start returns the index of the first token covered by the line.
	Start() int
	// End returns one past the index of the last token covered by the line.
	End() int
	// SpacesBefore reports the spacing annotation preceding the line's
	// first token, consumed from the upstream spacing rules.
	SpacesBefore() int
	// MustWrap reports whether the line's first token was already
	// annotated as forcing a line break, independent of this engine's own
	// cost optimization.
	MustWrap() bool
}

// BreakDecision records what the reconstructor decided about the token
// boundary preceding a token.
type BreakDecision int

// The three break decisions a token boundary can settle into.
const (
	Undecided BreakDecision = iota
	MustWrap
	MustAppend
)

func (d BreakDecision) String() string {
	switch d {
	case Undecided:
		return "Undecided"
	case MustWrap:
		return "MustWrap"
	case MustAppend:
		return "MustAppend"
	default:
		return fmt.Sprintf("BreakDecision(%d)", int(d))
	}
}

// TokenBuffer is the preformat token buffer the reconstructor mutates in
// place, and the factory for Line views of a token range. Implemented by
// the token package.
type TokenBuffer interface {
	// Break reports the current break decision of the token at tokenIndex.
	Break(tokenIndex int) BreakDecision
	// SetBreak sets the break decision of the token at tokenIndex. Setting
	// MustWrap also resets the token's required leading spacing to zero,
	// since indentation is applied separately from spacing.
	SetBreak(tokenIndex int, decision BreakDecision)
	// MakeLine returns a Line view over the token range [start, end).
	MakeLine(start, end int) LineView
}

// LayoutItem is one node of a LayoutTree: a tag, a relative indentation, a
// leading-space count, a must-wrap flag, and — for Line items — the
// unwrapped line the leaf covers.
type LayoutItem struct {
	Type              ItemType
	IndentationSpaces int
	SpacesBefore      int
	MustWrap          bool
	Line              LineView // only set when Type == LineItemType
}

func (it LayoutItem) String() string {
	switch it.Type {
	case LineItemType:
		w := 0
		if it.Line != nil {
			w = it.Line.Width()
		}
		return fmt.Sprintf("Line(width=%d, indent=%d, spaces_before=%d, wrap=%t)",
			w, it.IndentationSpaces, it.SpacesBefore, it.MustWrap)
	default:
		return fmt.Sprintf("%s(indent=%d, spaces_before=%d, wrap=%t)",
			it.Type, it.IndentationSpaces, it.SpacesBefore, it.MustWrap)
	}
}

// LayoutTree is a candidate arrangement of a subtree: a LayoutItem plus an
// ordered list of children. Line items never have children.
type LayoutTree struct {
	Item     LayoutItem
	Children []*LayoutTree
}

func (t *LayoutTree) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s[%d children]", t.Item, len(t.Children))
}

// cloneWithExtraIndent returns a new root node with IndentationSpaces
// increased by indent, sharing the children slice. Layout trees are
// immutable by convention (cf. the teacher's persistent cord trees), so
// sharing unchanged children is safe and avoids a deep copy.
func cloneWithExtraIndent(t *LayoutTree, indent int) *LayoutTree {
	item := t.Item
	item.IndentationSpaces += indent
	return &LayoutTree{Item: item, Children: t.Children}
}

// adoptFlattened returns the children to splice into a new composite of
// kind typ: if t is itself a same-kind composite with zero extra
// indentation, its children are spliced in directly (the flattening
// invariant of spec §4.3/§4.4/§9), otherwise t itself becomes the sole
// child.
func adoptFlattened(t *LayoutTree, typ ItemType) []*LayoutTree {
	if t.Item.Type == typ && t.Item.IndentationSpaces == 0 {
		return t.Children
	}
	return []*LayoutTree{t}
}
