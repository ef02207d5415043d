package layout

import (
	"reflect"
	"testing"
)

// fakeToken is a minimal preformat token: a fixed rendered width plus the
// spacing/break annotations the reconstructor consumes and updates.
type fakeToken struct {
	text         string
	width        int
	spacesBefore int
	brk          BreakDecision
}

// fakeBuffer is a TokenBuffer over fakeTokens, letting tests pin down
// exact widths instead of depending on uax11 display-width measurement.
type fakeBuffer struct {
	toks []*fakeToken
}

func (b *fakeBuffer) Break(i int) BreakDecision { return b.toks[i].brk }

func (b *fakeBuffer) SetBreak(i int, decision BreakDecision) {
	b.toks[i].brk = decision
	if decision == MustWrap {
		b.toks[i].spacesBefore = 0
	}
}

func (b *fakeBuffer) MakeLine(start, end int) LineView {
	return fakeBufLine{buf: b, start: start, end: end}
}

type fakeBufLine struct {
	buf        *fakeBuffer
	start, end int
}

func (l fakeBufLine) Width() int {
	w := 0
	for i := l.start; i < l.end; i++ {
		w += l.buf.toks[i].width
		if i > l.start {
			w += l.buf.toks[i].spacesBefore
		}
	}
	return w
}
func (l fakeBufLine) Start() int { return l.start }
func (l fakeBufLine) End() int   { return l.end }
func (l fakeBufLine) SpacesBefore() int {
	if l.start >= l.end {
		return 0
	}
	return l.buf.toks[l.start].spacesBefore
}
func (l fakeBufLine) MustWrap() bool {
	if l.start >= l.end {
		return false
	}
	return l.buf.toks[l.start].brk == MustWrap
}

// buildCallTree builds the partition tree for a function call
// f(a, b, c, d, e, f_), covering spec §8 scenario 6. The arguments are
// short enough to all join on a single (indented) line, but the first
// argument's leading break decision is already annotated MustWrap by the
// (fictitious) upstream producer, simulating a call whose argument list
// always forces a line break when it wraps at all. That is what drives
// OptimalFunctionCallLayout straight to the Stack branch instead of
// Choice's Juxtaposition alternative, which would otherwise merge the
// header and the arguments onto one line.
func buildCallTree() (*PartitionNode, *fakeBuffer) {
	toks := []*fakeToken{
		{text: "f(", width: 2},
		{text: "a", width: 1, brk: MustWrap},
		{text: "b", width: 1, spacesBefore: 2},
		{text: "c", width: 1, spacesBefore: 2},
		{text: "d", width: 1, spacesBefore: 2},
		{text: "e", width: 1, spacesBefore: 2},
		{text: "f_", width: 2, spacesBefore: 2},
	}
	buf := &fakeBuffer{toks: toks}
	header := &PartitionNode{Line: buf.MakeLine(0, 1)}
	args := &PartitionNode{
		Policy: AppendFittingSubPartitions,
		Children: []*PartitionNode{
			{Line: buf.MakeLine(1, 2)},
			{Line: buf.MakeLine(2, 3)},
			{Line: buf.MakeLine(3, 4)},
			{Line: buf.MakeLine(4, 5)},
			{Line: buf.MakeLine(5, 6)},
			{Line: buf.MakeLine(6, 7)},
		},
	}
	root := &PartitionNode{
		Policy:   OptimalFunctionCallLayout,
		Children: []*PartitionNode{header, args},
		Indent:   0,
	}
	return root, buf
}

// TestOptimizeFunctionCallLayout covers spec §8 scenario 6.
func TestOptimizeFunctionCallLayout(t *testing.T) {
	defer setupTest(t)()
	style := testStyle()
	root, buf := buildCallTree()

	Optimize(style, root, buf)

	if root.Policy != OptimalFunctionCallLayout {
		t.Errorf("root policy = %v, want OptimalFunctionCallLayout", root.Policy)
	}
	if root.Line == nil || root.Line.Start() != 0 || root.Line.End() != 7 {
		t.Fatalf("root line = %v, want span [0,7)", root.Line)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d emitted lines, want 2 (header + all arguments joined)", len(root.Children))
	}
	wantRanges := [][2]int{{0, 1}, {1, 7}}
	wantIndent := []int{0, 4}
	for i, child := range root.Children {
		if child.Policy != AlreadyFormatted {
			t.Errorf("child %d policy = %v, want AlreadyFormatted", i, child.Policy)
		}
		if child.Line.Start() != wantRanges[i][0] || child.Line.End() != wantRanges[i][1] {
			t.Errorf("child %d line = [%d,%d), want [%d,%d)", i, child.Line.Start(), child.Line.End(), wantRanges[i][0], wantRanges[i][1])
		}
		if child.Indent != wantIndent[i] {
			t.Errorf("child %d indent = %d, want %d", i, child.Indent, wantIndent[i])
		}
	}
	if got := buf.Break(0); got != MustWrap {
		t.Errorf("token 0 break = %v, want MustWrap", got)
	}
	if got := buf.Break(1); got != MustWrap {
		t.Errorf("token 1 break = %v, want MustWrap", got)
	}
	if got := buf.Break(2); got != MustAppend {
		t.Errorf("token 2 break = %v, want MustAppend", got)
	}
}

// buildOverflowingCallTree builds the partition tree for a function call
// with a long header and a single unsplittable argument, f(x), where
// joining header and argument on one line overflows style.ColumnLimit but
// stacking the argument under the header (indented by style.WrapSpaces)
// does not. No token carries a pre-annotated MustWrap: the stacked layout
// must be selected by Choice purely because it costs less, covering spec
// §8 scenario 6 without the shortcut buildCallTree takes.
func buildOverflowingCallTree() (*PartitionNode, *fakeBuffer) {
	toks := []*fakeToken{
		{text: "reallyLongFunctionName(", width: 36},
		{text: "argumentExpression1", width: 20},
	}
	buf := &fakeBuffer{toks: toks}
	header := &PartitionNode{Line: buf.MakeLine(0, 1)}
	arg := &PartitionNode{Line: buf.MakeLine(1, 2)}
	root := &PartitionNode{
		Policy:   OptimalFunctionCallLayout,
		Children: []*PartitionNode{header, arg},
		Indent:   0,
	}
	return root, buf
}

// TestOptimizeFunctionCallLayoutChoosesStackOnCost covers the width-driven
// Choice(Juxtaposition, Stack) decision in OptimalFunctionCallLayout:
// joining header (width 36) and the argument (width 20) on one line spans
// 56 columns, 16 over the 40-column limit, costing 16*100=1600 at column
// 0. Stacking costs only the break penalty (2) plus the argument's own
// cost re-anchored at column 4 (still comfortably under the limit, so
// 0) — 2 total. Choice must pick the stacked alternative on that cost
// gap alone; nothing here forces a break.
func TestOptimizeFunctionCallLayoutChoosesStackOnCost(t *testing.T) {
	defer setupTest(t)()
	style := testStyle()
	root, buf := buildOverflowingCallTree()

	if buf.Break(0) != Undecided || buf.Break(1) != Undecided {
		t.Fatal("test setup error: no token should start out with a break decision")
	}

	Optimize(style, root, buf)

	if root.Policy != OptimalFunctionCallLayout {
		t.Errorf("root policy = %v, want OptimalFunctionCallLayout", root.Policy)
	}
	if root.Line == nil || root.Line.Start() != 0 || root.Line.End() != 2 {
		t.Fatalf("root line = %v, want span [0,2)", root.Line)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d emitted lines, want 2 (header, stacked argument)", len(root.Children))
	}
	wantRanges := [][2]int{{0, 1}, {1, 2}}
	wantIndent := []int{0, style.WrapSpaces}
	for i, child := range root.Children {
		if child.Policy != AlreadyFormatted {
			t.Errorf("child %d policy = %v, want AlreadyFormatted", i, child.Policy)
		}
		if child.Line.Start() != wantRanges[i][0] || child.Line.End() != wantRanges[i][1] {
			t.Errorf("child %d line = [%d,%d), want [%d,%d)", i, child.Line.Start(), child.Line.End(), wantRanges[i][0], wantRanges[i][1])
		}
		if child.Indent != wantIndent[i] {
			t.Errorf("child %d indent = %d, want %d", i, child.Indent, wantIndent[i])
		}
	}
	if got := buf.Break(1); got != MustWrap {
		t.Errorf("argument token break = %v, want MustWrap (stacked onto its own line by cost, not forced)", got)
	}
}

// TestReconstructIdempotent covers spec §8's round-trip invariant: feeding
// the chosen LayoutTree back into the reconstructor yields the same flat
// line sequence.
func TestReconstructIdempotent(t *testing.T) {
	defer setupTest(t)()
	style := testStyle()
	root, buf := buildCallTree()

	fn := Walk(style, root)
	seg, ok := fn.ActiveAt(root.Indent)
	if !ok {
		t.Fatal("no active segment at root indent")
	}
	first := Reconstruct(seg.Layout, root.Indent, buf)
	second := Reconstruct(seg.Layout, root.Indent, buf)

	toRanges := func(lines []*emittedLine) [][3]int {
		r := make([][3]int, len(lines))
		for i, l := range lines {
			r[i] = [3]int{l.Indent, l.Start, l.End}
		}
		return r
	}
	if !reflect.DeepEqual(toRanges(first), toRanges(second)) {
		t.Errorf("reconstruction not idempotent: first=%v second=%v", toRanges(first), toRanges(second))
	}
}

// TestAlreadyFormattedPassthrough covers spec §1/§4.7: a node already
// marked AlreadyFormatted must survive Optimize untouched.
func TestAlreadyFormattedPassthrough(t *testing.T) {
	defer setupTest(t)()
	style := testStyle()
	buf := &fakeBuffer{toks: []*fakeToken{{text: "x", width: 1}}}
	node := &PartitionNode{Policy: AlreadyFormatted, Line: buf.MakeLine(0, 1), Indent: 7}

	Optimize(style, node, buf)

	if node.Policy != AlreadyFormatted || node.Indent != 7 || len(node.Children) != 0 {
		t.Errorf("AlreadyFormatted node mutated: policy=%v indent=%d children=%d", node.Policy, node.Indent, len(node.Children))
	}
}
