package layout

import (
	"math"
	"sort"
)

// Line builds the cost function for a single unwrapped line of rendered
// width w = line.Width() (spec §4.1).
//
// If the line fits within the column limit, the function has two segments:
// free up to the column where it would start crowding the limit, then a
// rising cost of OverColumnLimitPenalty per column beyond it. If the line
// is already at or over the limit on its own, a single segment charges the
// overage starting at column 0.
func Line(style Style, line LineView) LayoutFunction {
	if line == nil {
		panic(ErrMissingLine)
	}
	w := line.Width()
	leaf := &LayoutTree{Item: LayoutItem{
		Type:         LineItemType,
		SpacesBefore: line.SpacesBefore(),
		MustWrap:     line.MustWrap(),
		Line:         line,
	}}
	if w < style.ColumnLimit {
		return LayoutFunction{Segments: []Segment{
			{Column: 0, Layout: leaf, Span: w, Intercept: 0, Gradient: 0},
			{Column: style.ColumnLimit - w, Layout: leaf, Span: w, Intercept: 0, Gradient: style.OverColumnLimitPenalty},
		}}
	}
	over := w - style.ColumnLimit
	return LayoutFunction{Segments: []Segment{
		{Column: 0, Layout: leaf, Span: w, Intercept: float64(over * style.OverColumnLimitPenalty), Gradient: style.OverColumnLimitPenalty},
	}}
}

// Indent shifts a cost function right by indent columns: the subtree now
// starts rendering indent columns after wherever the composite itself
// starts (spec §4.2).
//
// Each surviving segment's intercept and gradient are recharged relative
// to the new anchor: the over-limit penalty already reflected in f's cost
// at its (higher) absolute column is subtracted back out, since that
// overage is now accounted for by whatever combinator encloses this
// Indent at the new, smaller column. Matches
// original_source/common/formatting/layout_optimizer.cc's
// LayoutFunctionFactory::Indent formula exactly, rather than plain
// functional composition.
func Indent(style Style, f LayoutFunction, indent int) LayoutFunction {
	if indent < 0 {
		panic(ErrNegativeIndentation)
	}
	if f.IsEmpty() {
		return f
	}
	start := f.activeIndexAt(indent)
	out := make([]Segment, 0, len(f.Segments)-start)
	column := indent
	for i := start; i < len(f.Segments); i++ {
		s := f.Segments[i]
		if i > start {
			column = s.Column
		}
		columnsOverLimit := column - style.ColumnLimit
		over := columnsOverLimit
		if over < 0 {
			over = 0
		}
		newIntercept := f.CostAt(column) - float64(style.OverColumnLimitPenalty*over)
		newGradient := s.Gradient
		if columnsOverLimit >= 0 {
			newGradient -= style.OverColumnLimitPenalty
		}
		out = append(out, Segment{
			Column:    column - indent,
			Layout:    cloneWithExtraIndent(s.Layout, indent),
			Span:      indent + s.Span,
			Intercept: newIntercept,
			Gradient:  newGradient,
		})
	}
	return LayoutFunction{Segments: out}
}

// Juxtaposition places operands side by side on the same line, each
// separated from the previous one by its own SpacesBefore (spec §4.3). It
// generalizes to n operands by left fold.
func Juxtaposition(style Style, operands ...LayoutFunction) LayoutFunction {
	ops := filterNonEmpty(operands)
	if len(ops) == 0 {
		return LayoutFunction{}
	}
	result := ops[0]
	for _, op := range ops[1:] {
		result = juxtapose2(style, result, op)
	}
	return result
}

func juxtapose2(style Style, left, right LayoutFunction) LayoutFunction {
	if left.IsEmpty() {
		return right
	}
	if right.IsEmpty() {
		return left
	}
	li := 0
	colL := 0
	colR := left.Segments[0].Span + right.Segments[0].Layout.Item.SpacesBefore
	ri := right.activeIndexAt(colR)

	var out []Segment
	for {
		ls := left.Segments[li]
		rs := right.Segments[ri]
		columnsOver := colR - style.ColumnLimit
		intercept := ls.costAt(colL) + rs.costAt(colR)
		if columnsOver > 0 {
			intercept -= float64(style.OverColumnLimitPenalty * columnsOver)
		}
		gradient := ls.Gradient + rs.Gradient
		if columnsOver >= 0 {
			gradient -= style.OverColumnLimitPenalty
		}
		spacesBeforeR := rs.Layout.Item.SpacesBefore
		out = append(out, Segment{
			Column:    colL,
			Layout:    buildJuxtapositionLayout(ls.Layout, rs.Layout),
			Span:      ls.Span + rs.Span + spacesBeforeR,
			Intercept: intercept,
			Gradient:  gradient,
		})

		hasNextL := li+1 < len(left.Segments)
		hasNextR := ri+1 < len(right.Segments)
		if !hasNextL && !hasNextR {
			break
		}
		nextColL, nextColR := Infinity, Infinity
		if hasNextL {
			nextColL = left.Segments[li+1].Column
		}
		if hasNextR {
			nextColR = right.Segments[ri+1].Column
		}
		if !hasNextR || nextColL-colL <= nextColR-colR {
			// Advance past the next left knot. colR is recomputed from the
			// new left segment's own Span, not by adding the column delta:
			// Span can change arbitrarily across a left knot (e.g. a
			// Choice-derived operand switching between alternatives with
			// different first-line widths), so the right iterator may need
			// to jump by more than one segment — re-seek it rather than
			// increment.
			nextLS := left.Segments[li+1]
			colL = nextColL
			colR = nextColL + nextLS.Span + spacesBeforeR
			li++
			ri = right.activeIndexAt(colR)
		} else {
			// Advance past the next right knot. The left segment stays
			// active; only colL is recomputed to keep it consistent with
			// the (unchanged) left Span and the new colR.
			colR = nextColR
			colL = nextColR - ls.Span - spacesBeforeR
			ri++
		}
	}
	return LayoutFunction{Segments: out}
}

func buildJuxtapositionLayout(left, right *LayoutTree) *LayoutTree {
	children := make([]*LayoutTree, 0, len(left.Children)+len(right.Children)+2)
	children = append(children, adoptFlattened(left, JuxtapositionItemType)...)
	children = append(children, adoptFlattened(right, JuxtapositionItemType)...)
	item := LayoutItem{
		Type:         JuxtapositionItemType,
		MustWrap:     left.Item.MustWrap,
		SpacesBefore: left.Item.SpacesBefore,
	}
	return &LayoutTree{Item: item, Children: children}
}

// Stack places operands on successive lines, one LineBreakPenalty per
// newline introduced, using the first operand's SpacesBefore/MustWrap and
// the last operand's Span for the composite (spec §4.4).
func Stack(style Style, operands ...LayoutFunction) LayoutFunction {
	ops := filterNonEmpty(operands)
	if len(ops) == 0 {
		return LayoutFunction{}
	}
	if len(ops) == 1 {
		return ops[0]
	}
	cols := criticalColumns(ops)
	n := len(ops)
	out := make([]Segment, 0, len(cols))
	for _, c := range cols {
		intercept := float64(n-1) * float64(style.LineBreakPenalty)
		gradient := 0
		children := make([]*LayoutTree, 0, n)
		var span int
		var first LayoutItem
		for i, op := range ops {
			s := op.Segments[op.activeIndexAt(c)]
			intercept += s.costAt(c)
			gradient += s.Gradient
			children = append(children, adoptFlattened(s.Layout, StackItemType)...)
			if i == 0 {
				first = s.Layout.Item
			}
			if i == n-1 {
				span = s.Span
			}
		}
		item := LayoutItem{
			Type:         StackItemType,
			MustWrap:     first.MustWrap,
			SpacesBefore: first.SpacesBefore,
		}
		out = append(out, Segment{
			Column:    c,
			Layout:    &LayoutTree{Item: item, Children: children},
			Span:      span,
			Intercept: intercept,
			Gradient:  gradient,
		})
	}
	return LayoutFunction{Segments: out}
}

// criticalColumns is the sorted union of all operands' knot columns.
func criticalColumns(ops []LayoutFunction) []int {
	seen := map[int]struct{}{}
	cols := make([]int, 0, len(ops))
	for _, op := range ops {
		for _, s := range op.Segments {
			if _, ok := seen[s.Column]; !ok {
				seen[s.Column] = struct{}{}
				cols = append(cols, s.Column)
			}
		}
	}
	sort.Ints(cols)
	return cols
}

// Choice returns the pointwise minimum of its alternatives, expressed as a
// piecewise-linear function whose knots are the input knot columns at which
// the winning segment changes, plus any crossover columns where a
// cheaper-gradient alternative overtakes the current minimum (spec §4.5).
func Choice(alternatives ...LayoutFunction) LayoutFunction {
	alts := filterNonEmpty(alternatives)
	if len(alts) == 0 {
		return LayoutFunction{}
	}
	if len(alts) == 1 {
		return alts[0]
	}
	var out []Segment
	lastWinner, lastIdx := -1, -1
	for c := 0; c < Infinity; {
		idxs := make([]int, len(alts))
		nextKnot := Infinity
		for i, a := range alts {
			idxs[i] = a.activeIndexAt(c)
			if idxs[i]+1 < len(a.Segments) {
				if nk := a.Segments[idxs[i]+1].Column; nk < nextKnot {
					nextKnot = nk
				}
			}
		}
		winner := 0
		winCost := alts[0].Segments[idxs[0]].costAt(c)
		for i := 1; i < len(alts); i++ {
			cost := alts[i].Segments[idxs[i]].costAt(c)
			cur := alts[winner].Segments[idxs[winner]]
			if cost < winCost ||
				(cost == winCost && alts[i].Segments[idxs[i]].Gradient < cur.Gradient) {
				winner = i
				winCost = cost
			}
		}
		if winner != lastWinner || idxs[winner] != lastIdx {
			s := alts[winner].Segments[idxs[winner]]
			out = append(out, Segment{Column: c, Layout: s.Layout, Span: s.Span, Intercept: winCost, Gradient: s.Gradient})
			lastWinner = winner
			lastIdx = idxs[winner]
		}
		winGrad := alts[winner].Segments[idxs[winner]].Gradient
		nextC := nextKnot
		for i, a := range alts {
			if i == winner {
				continue
			}
			s := a.Segments[idxs[i]]
			if s.Gradient < winGrad {
				gamma := (s.costAt(c) - winCost) / float64(winGrad-s.Gradient)
				cNext := c + int(math.Ceil(gamma))
				if cNext <= c {
					cNext = c + 1
				}
				if cNext < nextC {
					nextC = cNext
				}
			}
		}
		if nextC <= c {
			nextC = c + 1
		}
		if nextC >= Infinity {
			break
		}
		c = nextC
	}
	return LayoutFunction{Segments: out}
}

// Wrap builds the cost function for children that may either all fit on a
// single line or break after the first, indenting the rest by
// style.WrapSpaces — Yelland's "wrap" construction (spec §4.6). Computed
// bottom-up right to left so every suffix is built exactly once.
func Wrap(style Style, children ...LayoutFunction) LayoutFunction {
	items := filterNonEmpty(children)
	n := len(items)
	if n == 0 {
		return LayoutFunction{}
	}
	if n == 1 {
		return items[0]
	}
	memo := make([]LayoutFunction, n)
	memo[n-1] = items[n-1]
	for i := n - 2; i >= 0; i-- {
		all := Juxtaposition(style, items[i:]...)
		stacked := Stack(style, items[i], Indent(style, memo[i+1], style.WrapSpaces))
		memo[i] = Choice(all, stacked)
	}
	return memo[0]
}
